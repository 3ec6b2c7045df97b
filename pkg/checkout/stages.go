package checkout

import (
	"context"

	"github.com/goliatone/go-checkoutfields/pkg/fields"
	"github.com/goliatone/go-checkoutfields/pkg/pipeline"
)

// Stage names and priorities registered by DefaultStages.
const (
	StageTitle            = "title"
	StageBirthdate        = "birthdate"
	StageEmailPlaceholder = "email-placeholder"
	StageReorder          = "reorder"

	StagePriorityTitle            = 10
	StagePriorityBirthdate        = 20
	StagePriorityEmailPlaceholder = 999
	StagePriorityReorder          = 1000
)

// TitleStage merges the title descriptor into the billing section.
func TitleStage() pipeline.Stage {
	return pipeline.StageFunc(func(_ context.Context, env pipeline.Env, c fields.Collection) (fields.Collection, error) {
		d, ok := TitleDescriptor(env.Settings)
		if !ok {
			return c, nil
		}
		return fields.Merge(c, fields.SectionBilling, d), nil
	})
}

// BirthdateStage merges the birthdate descriptor into the billing section.
func BirthdateStage() pipeline.Stage {
	return pipeline.StageFunc(func(_ context.Context, env pipeline.Env, c fields.Collection) (fields.Collection, error) {
		d, ok := BirthdateDescriptor(env.Settings, env.OnCheckout)
		if !ok {
			return c, nil
		}
		return fields.Merge(c, fields.SectionBilling, d), nil
	})
}

// EmailPlaceholderStage applies EmailPlaceholder.
func EmailPlaceholderStage(placeholder string) pipeline.Stage {
	return pipeline.StageFunc(func(_ context.Context, _ pipeline.Env, c fields.Collection) (fields.Collection, error) {
		return EmailPlaceholder(c, placeholder), nil
	})
}

// ReorderStage re-sorts every section regardless of how fields were added.
func ReorderStage() pipeline.Stage {
	return pipeline.StageFunc(func(_ context.Context, _ pipeline.Env, c fields.Collection) (fields.Collection, error) {
		return fields.Reorder(c), nil
	})
}

// DefaultStages registers title, birthdate, email placeholder and reorder on d.
func DefaultStages(d *pipeline.Dispatcher, emailPlaceholder string) *pipeline.Dispatcher {
	if d == nil {
		d = pipeline.New()
	}
	d.Register(StageTitle, StagePriorityTitle, TitleStage())
	d.Register(StageBirthdate, StagePriorityBirthdate, BirthdateStage())
	d.Register(StageEmailPlaceholder, StagePriorityEmailPlaceholder, EmailPlaceholderStage(emailPlaceholder))
	d.Register(StageReorder, StagePriorityReorder, ReorderStage())
	return d
}
