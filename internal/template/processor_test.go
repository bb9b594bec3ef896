package template

import (
	"strings"
	"testing"

	"godot-cli/internal/interfaces"
)

func TestProcessor_RenderDefault(t *testing.T) {
	processor, err := NewProcessor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := processor.Render(interfaces.Descriptor{Name: "space-game"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "[application]\n\nconfig/name=\"space-game\"\n"
	if result != expected {
		t.Errorf("expected %q, got %q", expected, result)
	}
}

func TestProcessor_RenderEscapesName(t *testing.T) {
	processor := MustNewProcessor("")

	result, err := processor.Render(interfaces.Descriptor{Name: `say "hi"`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, `config/name="say \"hi\""`) {
		t.Errorf("expected quoted name in %q", result)
	}
}

func TestProcessor_CustomTemplate(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		expected  string
		wantError bool
	}{
		{
			name:     "sprig helper",
			template: `{{ .Name | upper }}`,
			expected: "PONG",
		},
		{
			name:     "plain field",
			template: `name={{ .Name }}`,
			expected: "name=pong",
		},
		{
			name:      "parse error",
			template:  `{{ .Name `,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor, err := NewProcessor(tt.template)
			if tt.wantError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			result, err := processor.Render(interfaces.Descriptor{Name: "pong"})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestMustNewProcessor_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid template")
		}
	}()
	MustNewProcessor("{{ .Name ")
}
