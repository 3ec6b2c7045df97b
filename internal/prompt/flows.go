package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-checkoutfields/pkg/checkout"
	"github.com/goliatone/go-checkoutfields/pkg/dateformat"
	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/settings"
)

// EditSettings asks for every flag, starting from current.
func EditSettings(ctx context.Context, driver Driver, current settings.Snapshot) (settings.Snapshot, error) {
	next := current
	for _, flag := range settings.Flags() {
		on, err := driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Enable the %s checkout field?", flag),
			Default: current.Enabled(flag),
			Help:    "stored under " + flag.Key(),
		})
		if err != nil {
			return current, err
		}
		next = next.With(flag, on)
	}
	return next, nil
}

// CollectSection prompts for every descriptor in order and returns the
// submitted payload. Choice fields answer with the option code. defaults
// supplies the pre-filled value per key and may be nil.
func CollectSection(ctx context.Context, driver Driver, descriptors []fields.Descriptor, defaults func(key string) string) (map[string]string, error) {
	payload := make(map[string]string, len(descriptors))
	for _, d := range descriptors {
		def := ""
		if defaults != nil {
			def = defaults(d.Key)
		}

		if d.Kind.HasOptions() {
			value, err := selectOption(ctx, driver, d, def)
			if err != nil {
				return nil, err
			}
			payload[d.Key] = value
			continue
		}

		value, err := driver.Input(ctx, InputConfig{
			Message:   message(d),
			Default:   def,
			Help:      d.Placeholder,
			Validator: validator(d),
		})
		if err != nil {
			return nil, err
		}
		payload[d.Key] = strings.TrimSpace(value)
	}
	return payload, nil
}

func selectOption(ctx context.Context, driver Driver, d fields.Descriptor, def string) (string, error) {
	labels := make([]string, len(d.Options))
	defaultIndex := -1
	for i, opt := range d.Options {
		labels[i] = opt.Label
		if opt.Value == def {
			defaultIndex = i
		}
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      message(d),
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(d.Options) {
		return "", fmt.Errorf("prompt: %s: choice %d out of range", d.Key, idx)
	}
	return d.Options[idx].Value, nil
}

func message(d fields.Descriptor) string {
	label := d.Label
	if label == "" {
		label = d.Key
	}
	if d.Required {
		return label + " *"
	}
	return label
}

func validator(d fields.Descriptor) func(string) error {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			if d.Required {
				return errors.New("this field is required")
			}
			return nil
		}
		if d.Key == checkout.KeyBirthdate {
			if _, ok := dateformat.ToStorage(value); !ok {
				return fmt.Errorf("enter a date as %s", checkout.BirthdatePlaceholder)
			}
		}
		return nil
	}
}
