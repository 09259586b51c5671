package core

import "fmt"

// MaxOptionalFields bounds the optional fields of one struct. The flags
// field is written as a 32-bit mask.
const MaxOptionalFields = 32

// FieldDescriptor tells the codec layer how to encode one field.
type FieldDescriptor struct {
	Name    string
	Default any
	Version int
	TypeFQN string

	Optional bool
	Array    bool
	Framed   bool

	// Flag is the bitmask bit signalling presence; zero for required
	// fields.
	Flag uint32
}

// Plan names the codec combinators wrapping the terminal encoding of the
// referenced type, outermost first.
func (d FieldDescriptor) Plan() string {
	plan := d.TypeFQN
	if d.Framed {
		plan = "frame(" + plan + ")"
	}
	if d.Array {
		plan = "seq(" + plan + ")"
	}
	return plan
}

// deriveDescriptors computes per-field descriptors and the flags-field
// position. flagsField is the explicit override or -1; an override must
// name an existing field, so a struct without fields cannot pin one.
func deriveDescriptors(fqn string, fields []Field, flagsField int) ([]FieldDescriptor, int, error) {
	if flagsField < -1 || flagsField >= len(fields) {
		return nil, 0, invalidDeclarationError(fmt.Sprintf("flags field %d of %s is out of range", flagsField, fqn))
	}
	descriptors := make([]FieldDescriptor, 0, len(fields))
	optional := 0
	for idx, field := range fields {
		descriptor := FieldDescriptor{
			Name:     field.Name,
			Default:  field.Type.Default(),
			Version:  field.Version,
			TypeFQN:  field.Type.FQN(),
			Optional: !field.Required,
			Array:    field.Array,
			Framed:   field.Type.Framed(),
		}
		if field.Array {
			descriptor.Default = nil
		}
		if descriptor.Optional {
			if optional == MaxOptionalFields {
				return nil, 0, invalidDeclarationError(fmt.Sprintf("%s: %s declares more than %d", msgOptionalOverflow, fqn, MaxOptionalFields))
			}
			if flagsField < 0 {
				flagsField = idx
			}
			descriptor.Flag = 1 << optional
			optional++
		}
		descriptors = append(descriptors, descriptor)
	}
	return descriptors, flagsField, nil
}
