package commands

import "testing"

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"valid text", FormatText, false},
		{"valid json", FormatJSON, false},
		{"valid yaml", FormatYAML, false},
		{"invalid format", "xml", true},
		{"empty format", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		key     string
		value   string
		wantErr bool
	}{
		{"simple pair", "key=value", "key", "value", false},
		{"nested key path", "database.host=localhost", "database.host", "localhost", false},
		{"value with equals", "url=http://example.com?a=b", "url", "http://example.com?a=b", false},
		{"empty value", "key=", "key", "", false},
		{"no equals", "invalid", "", "", true},
		{"empty key", "=value", "", "", true},
		{"empty argument", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := ParseKeyValue(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKeyValue(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if key != tt.key || value != tt.value {
				t.Errorf("ParseKeyValue(%q) = (%q, %q), want (%q, %q)", tt.arg, key, value, tt.key, tt.value)
			}
		})
	}
}

func TestParseKeyValue_ErrorMessage(t *testing.T) {
	_, _, err := ParseKeyValue("oops")
	if err == nil || err.Error() != "invalid key=value pair: oops" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseFileKey(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		file    string
		key     string
		wantErr bool
	}{
		{"file and key", "config.yaml:database.host", "config.yaml", "database.host", false},
		{"colon in key", "config.yaml:a:b", "config.yaml", "a:b", false},
		{"no colon", "config.yaml", "", "", true},
		{"empty file", ":key", "", "", true},
		{"empty key", "config.yaml:", "", "", true},
		{"empty argument", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, key, err := ParseFileKey(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFileKey(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if file != tt.file || key != tt.key {
				t.Errorf("ParseFileKey(%q) = (%q, %q), want (%q, %q)", tt.arg, file, key, tt.file, tt.key)
			}
		})
	}
}

func TestParseFileKey_ErrorMessage(t *testing.T) {
	_, _, err := ParseFileKey("invalid")
	want := "invalid file:key pair: invalid (expected format: file.yaml:key.path)"
	if err == nil || err.Error() != want {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseOptionalFileKey(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		file    string
		key     string
		wantErr bool
	}{
		{"bare key", "dest.key", "", "dest.key", false},
		{"file and key", "dest.yaml:dest.key", "dest.yaml", "dest.key", false},
		{"file only", "dest.yaml:", "dest.yaml", "", false},
		{"key only", ":dest.key", "", "dest.key", false},
		{"both empty", ":", "", "", true},
		{"empty argument", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, key, err := ParseOptionalFileKey(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOptionalFileKey(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if file != tt.file || key != tt.key {
				t.Errorf("ParseOptionalFileKey(%q) = (%q, %q), want (%q, %q)", tt.arg, file, key, tt.file, tt.key)
			}
		})
	}
}

func TestParseOptionalFileKey_ErrorMessages(t *testing.T) {
	_, _, err := ParseOptionalFileKey(":")
	want := "invalid file:key pair: : (file and key cannot both be empty)"
	if err == nil || err.Error() != want {
		t.Errorf("unexpected error: %v", err)
	}

	_, _, err = ParseOptionalFileKey("")
	if err == nil || err.Error() != "key cannot be empty" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOutputStructured(t *testing.T) {
	data := map[string]string{"test": "value"}

	t.Run("invalid format", func(t *testing.T) {
		err := OutputStructured(data, "invalid")
		if err == nil {
			t.Error("expected error for invalid format")
		}
	})
}
