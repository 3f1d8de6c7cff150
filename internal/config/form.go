package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/VarunSharma3520/floatinput/internal/fs"
	"github.com/VarunSharma3520/floatinput/internal/validation"
)

var (
	// ErrFormFile is returned when a form definition cannot be read or parsed
	ErrFormFile = errors.New("config: invalid form file")
)

// Messages holds the warning text for each violation kind.
type Messages struct {
	Empty     string `yaml:"empty"`
	MinLength string `yaml:"min_length"`
	InputType string `yaml:"input_type"`
	MaxLength string `yaml:"max_length"`
}

// FieldFile describes one floating input in a form definition.
type FieldFile struct {
	Name          string   `yaml:"name"`
	Placeholder   string   `yaml:"placeholder"`
	Icon          string   `yaml:"icon"`
	Secure        bool     `yaml:"secure"`
	EnableActions bool     `yaml:"enable_actions"`
	CanEmpty      *bool    `yaml:"can_empty"`
	MinLength     *int     `yaml:"min_length"`
	MaxLength     *int     `yaml:"max_length"`
	InputType     string   `yaml:"input_type"`
	Pattern       string   `yaml:"pattern"`
	DividerHeight int      `yaml:"divider_height"`
	Messages      Messages `yaml:"messages"`
}

// FormFile is the top-level form definition.
type FormFile struct {
	Title  string      `yaml:"title"`
	Theme  string      `yaml:"theme"`
	Fields []FieldFile `yaml:"fields"`
}

// LoadForm reads a YAML form definition from path.
func LoadForm(path string) (*FormFile, error) {
	exists, err := fs.FileExists(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormFile, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s does not exist", ErrFormFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormFile, err)
	}
	return ParseForm(data)
}

// ParseForm decodes a YAML form definition and checks field names are present
// and unique.
func ParseForm(data []byte) (*FormFile, error) {
	var form FormFile
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormFile, err)
	}
	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrFormFile)
	}

	seen := make(map[string]struct{}, len(form.Fields))
	for i, f := range form.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrFormFile, i)
		}
		if _, dup := seen[f.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrFormFile, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return &form, nil
}

// Settings converts the field definition into validation settings. notify,
// when non-nil, becomes the callback of every violation.
func (f FieldFile) Settings(theme validation.Theme, notify func(field string, status validation.Status)) (validation.Settings, error) {
	callback := func(status validation.Status) func() {
		if notify == nil {
			return nil
		}
		return func() { notify(f.Name, status) }
	}

	opts := []validation.Option{
		validation.WithTheme(theme),
		validation.WithPlaceholder(f.Placeholder),
		validation.WithIcon(f.Icon),
		validation.WithSecure(f.Secure),
		validation.WithActions(f.EnableActions),
	}
	if f.DividerHeight > 0 {
		opts = append(opts, validation.WithDividerHeight(f.DividerHeight))
	}

	if f.CanEmpty != nil {
		if *f.CanEmpty {
			opts = append(opts, validation.WithCanEmpty(true))
		} else {
			opts = append(opts, validation.WithRequired(
				orDefault(f.Messages.Empty, "This field is required"),
				callback(validation.EmptyViolated)))
		}
	}
	if f.MinLength != nil {
		opts = append(opts, validation.WithMinLength(*f.MinLength,
			orDefault(f.Messages.MinLength, fmt.Sprintf("Use at least %d characters", *f.MinLength)),
			callback(validation.MinLengthViolated)))
	}
	if f.MaxLength != nil {
		opts = append(opts, validation.WithMaxLength(*f.MaxLength,
			orDefault(f.Messages.MaxLength, fmt.Sprintf("Use fewer than %d characters", *f.MaxLength)),
			callback(validation.MaxLengthViolated)))
	}

	inputType, err := f.inputType()
	if err != nil {
		return validation.Settings{}, err
	}
	if inputType != nil {
		opts = append(opts, validation.WithInputType(*inputType,
			orDefault(f.Messages.InputType, "Contains characters that are not allowed"),
			callback(validation.InputTypeViolated)))
	}

	s := validation.NewSettings(opts...)
	if err := s.Validate(); err != nil {
		return validation.Settings{}, fmt.Errorf("field %q: %w", f.Name, err)
	}
	return s, nil
}

func (f FieldFile) inputType() (*validation.InputType, error) {
	switch {
	case f.InputType != "" && f.Pattern != "":
		return nil, fmt.Errorf("%w: field %q sets both input_type and pattern", ErrFormFile, f.Name)
	case f.InputType != "":
		it, ok := validation.LookupInputType(f.InputType)
		if !ok {
			return nil, fmt.Errorf("%w: field %q has unknown input_type %q", ErrFormFile, f.Name, f.InputType)
		}
		return &it, nil
	case f.Pattern != "":
		it := validation.Custom(f.Name, f.Pattern)
		return &it, nil
	default:
		return nil, nil
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// DefaultForm is the form shown when no form file is configured.
func DefaultForm() *FormFile {
	return &FormFile{
		Title: "Sign up",
		Fields: []FieldFile{
			{
				Name:        "username",
				Placeholder: "Username",
				Icon:        "@",
				CanEmpty:    validation.Bool(false),
				MinLength:   validation.Int(3),
				MaxLength:   validation.Int(17),
				InputType:   validation.Alphanumeric.Name,
				Messages: Messages{
					Empty:     "Pick a username",
					InputType: "Letters and digits only",
				},
			},
			{
				Name:        "pin",
				Placeholder: "PIN",
				Icon:        "#",
				Secure:      true,
				CanEmpty:    validation.Bool(false),
				MinLength:   validation.Int(4),
				MaxLength:   validation.Int(7),
				InputType:   validation.Digits.Name,
				Messages: Messages{
					InputType: "Digits only",
				},
			},
			{
				Name:          "email",
				Placeholder:   "Email (optional)",
				EnableActions: true,
				CanEmpty:      validation.Bool(true),
				InputType:     validation.Email.Name,
				Messages: Messages{
					InputType: "That doesn't look like an email address",
				},
			},
		},
	}
}
