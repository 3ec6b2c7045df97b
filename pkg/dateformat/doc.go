// Package dateformat converts birthdates between the encodings exchanged by
// the checkout pipeline: Storage (`YYYY-MM-DD`, persisted metadata), Display
// (`MM/DD/YYYY`, what shoppers type and see) and Export (`MM/DD`, the mailing
// list merge tag). Parsing is strict: the text must match the layout exactly
// and name a real calendar date. The conversion helpers never fail loudly;
// they report a missing result through their boolean return so callers can
// omit the value instead of aborting checkout.
package dateformat
