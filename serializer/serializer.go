// Package serializer renders validated command definitions into the JSON
// body Discord's application command endpoints accept.
//
// Each object is written from an explicit field plan: the plan functions
// decide, field by field, whether a value is present, and only present
// fields are written. Enumerations are written as their registry codes.
// The serializer does not validate; run the validator first.
package serializer

import (
	"bytes"
	"encoding/json"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/wosher-co/discordinteractions/models"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// field is one entry of an object's field plan.
type field struct {
	key   string
	write func(*jsoniter.Stream)
}

// Serialize renders c as compact JSON.
func Serialize(c *models.Command) (string, error) {
	b, err := render("serialize command", func(s *jsoniter.Stream) { writeObject(s, commandPlan(c)) })
	return string(b), err
}

// SerializeAll renders cmds as a JSON array, the body of a bulk overwrite request.
func SerializeAll(cmds []models.Command) (string, error) {
	b, err := render("serialize commands", func(s *jsoniter.Stream) {
		s.WriteArrayStart()
		for i := range cmds {
			if i > 0 {
				s.WriteMore()
			}
			writeObject(s, commandPlan(&cmds[i]))
		}
		s.WriteArrayEnd()
	})
	return string(b), err
}

// SerializeIndent renders c like Serialize, indented for people to read.
func SerializeIndent(c *models.Command, indent string) (string, error) {
	out, err := Serialize(c)
	if err != nil {
		return "", err
	}
	return Indent(out, indent)
}

// Indent re-indents compact output of Serialize or SerializeAll. Key order
// is kept.
func Indent(compact, indent string) (string, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(compact), "", indent); err != nil {
		return "", &SerializationError{Op: "indent", Err: err}
	}
	return out.String(), nil
}

// CommandFields lists, in output order, the keys Serialize writes for c.
func CommandFields(c *models.Command) []string { return keys(commandPlan(c)) }

// OptionFields lists, in output order, the keys Serialize writes for o.
func OptionFields(o *models.Option) []string { return keys(optionPlan(o)) }

func render(op string, write func(*jsoniter.Stream)) ([]byte, error) {
	s := api.BorrowStream(nil)
	defer api.ReturnStream(s)

	write(s)
	if s.Error != nil {
		return nil, &SerializationError{Op: op, Err: s.Error}
	}
	return slices.Clone(s.Buffer()), nil
}

func keys(plan []field) []string {
	out := make([]string, len(plan))
	for i, f := range plan {
		out[i] = f.key
	}
	return out
}

func writeObject(s *jsoniter.Stream, plan []field) {
	s.WriteObjectStart()
	for i, f := range plan {
		if i > 0 {
			s.WriteMore()
		}
		s.WriteObjectField(f.key)
		f.write(s)
	}
	s.WriteObjectEnd()
}

func commandPlan(c *models.Command) []field {
	var plan []field
	if c.Name != "" {
		plan = append(plan, stringField("name", c.Name))
	}
	if c.NameLocalizations != nil {
		plan = append(plan, localizationsField("name_localizations", c.NameLocalizations))
	}
	if c.Description != nil {
		plan = append(plan, stringField("description", *c.Description))
	}
	if c.DescriptionLocalizations != nil {
		plan = append(plan, localizationsField("description_localizations", c.DescriptionLocalizations))
	}
	if c.Options != nil {
		plan = append(plan, optionsField(c.Options))
	}
	if c.DefaultMemberPermissions != nil {
		plan = append(plan, stringField("default_member_permissions", *c.DefaultMemberPermissions))
	}
	if c.DMPermission != nil {
		plan = append(plan, boolField("dm_permission", *c.DMPermission))
	}
	plan = append(plan, boolField("default_permission", c.DefaultPermission))
	if c.Type != nil {
		plan = append(plan, codeField("type", c.Type.Code()))
	}
	plan = append(plan, boolField("nsfw", c.NSFW))
	return plan
}

func optionPlan(o *models.Option) []field {
	plan := []field{
		codeField("type", o.Type.Code()),
		stringField("name", o.Name),
	}
	if o.NameLocalizations != nil {
		plan = append(plan, localizationsField("name_localizations", o.NameLocalizations))
	}
	plan = append(plan, stringField("description", o.Description))
	if o.DescriptionLocalizations != nil {
		plan = append(plan, localizationsField("description_localizations", o.DescriptionLocalizations))
	}
	if o.Required != nil {
		plan = append(plan, boolField("required", *o.Required))
	}
	if o.Choices != nil {
		plan = append(plan, choicesField(o.Choices))
	}
	if o.Options != nil {
		plan = append(plan, optionsField(o.Options))
	}
	if o.ChannelTypes != nil {
		types := o.ChannelTypes
		plan = append(plan, field{"channel_types", func(s *jsoniter.Stream) {
			s.WriteArrayStart()
			for i, ct := range types {
				if i > 0 {
					s.WriteMore()
				}
				s.WriteUint8(ct.Code())
			}
			s.WriteArrayEnd()
		}})
	}
	if o.MinValue != nil {
		plan = append(plan, floatField("min_value", *o.MinValue))
	}
	if o.MaxValue != nil {
		plan = append(plan, floatField("max_value", *o.MaxValue))
	}
	if o.MinLength != nil {
		plan = append(plan, uintField("min_length", *o.MinLength))
	}
	if o.MaxLength != nil {
		plan = append(plan, uintField("max_length", *o.MaxLength))
	}
	if o.Autocomplete != nil {
		plan = append(plan, boolField("autocomplete", *o.Autocomplete))
	}
	return plan
}

func choicePlan(ch *models.Choice) []field {
	plan := []field{stringField("name", ch.Name)}
	if ch.NameLocalizations != nil {
		plan = append(plan, localizationsField("name_localizations", ch.NameLocalizations))
	}
	value := ch.Value
	plan = append(plan, field{"value", func(s *jsoniter.Stream) { writeChoiceValue(s, value) }})
	return plan
}

func writeChoiceValue(s *jsoniter.Stream, v models.ChoiceValue) {
	switch v.Kind() {
	case models.ChoiceString:
		str, _ := v.Str()
		s.WriteString(str)
	case models.ChoiceInteger:
		n, _ := v.Int()
		s.WriteInt32(n)
	case models.ChoiceFloat:
		f, _ := v.Float()
		s.WriteFloat64(f)
	default:
		s.WriteNil()
	}
}

func optionsField(opts []models.Option) field {
	return field{"options", func(s *jsoniter.Stream) {
		s.WriteArrayStart()
		for i := range opts {
			if i > 0 {
				s.WriteMore()
			}
			writeObject(s, optionPlan(&opts[i]))
		}
		s.WriteArrayEnd()
	}}
}

func choicesField(choices []models.Choice) field {
	return field{"choices", func(s *jsoniter.Stream) {
		s.WriteArrayStart()
		for i := range choices {
			if i > 0 {
				s.WriteMore()
			}
			writeObject(s, choicePlan(&choices[i]))
		}
		s.WriteArrayEnd()
	}}
}

// localizationsField writes keys in sorted order so output is byte-stable.
func localizationsField(key string, locs models.Localizations) field {
	return field{key, func(s *jsoniter.Stream) {
		codes := make([]string, 0, len(locs))
		for code := range locs {
			codes = append(codes, code)
		}
		slices.Sort(codes)

		s.WriteObjectStart()
		for i, code := range codes {
			if i > 0 {
				s.WriteMore()
			}
			s.WriteObjectField(code)
			s.WriteString(locs[code])
		}
		s.WriteObjectEnd()
	}}
}

func stringField(key, v string) field {
	return field{key, func(s *jsoniter.Stream) { s.WriteString(v) }}
}

func boolField(key string, v bool) field {
	return field{key, func(s *jsoniter.Stream) { s.WriteBool(v) }}
}

func codeField(key string, v uint8) field {
	return field{key, func(s *jsoniter.Stream) { s.WriteUint8(v) }}
}

func uintField(key string, v uint32) field {
	return field{key, func(s *jsoniter.Stream) { s.WriteUint32(v) }}
}

func floatField(key string, v float64) field {
	return field{key, func(s *jsoniter.Stream) { s.WriteFloat64(v) }}
}
