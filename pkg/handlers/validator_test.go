package handlers

import "testing"

var str = "test_value"

func TestValidator(t *testing.T) {
	validator := &Validator{
		location: "test_location",
		field:    "test_field",
		value:    &str,
	}

	validator.Required()
	validator.Empty()
	validator.Matches("someregexp")
	validator.MaxLength(10)
	validator.MinLength(20)
	validator.URL()
	validator.Custom(func(string) bool { return true }, "test")
	validator.In("test_value", "other_value")
}

func TestValidatorIn(t *testing.T) {
	value := "gif"
	validator := &Validator{
		location: "body",
		field:    "mediaType",
		value:    &value,
	}

	err := validator.In("image", "video")
	if err == nil {
		t.Errorf("expected error for value outside the allowed set")
	}

	value = "image"
	err = validator.In("image", "video")
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
