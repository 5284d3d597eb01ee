package code

import "testing"

func TestParseStroke(t *testing.T) {
	tests := []struct {
		name    string
		stroke  string
		want    []Code
		wantErr bool
	}{
		{
			name:   "single key",
			stroke: "w",
			want:   []Code{W},
		},
		{
			name:   "full notation",
			stroke: "ctrl+shift+w",
			want:   []Code{Ctrl, Shift, W},
		},
		{
			name:   "compact notation",
			stroke: "C-S-w",
			want:   []Code{Ctrl, Shift, W},
		},
		{
			name:   "compact terminal letter stays a letter",
			stroke: "C-c",
			want:   []Code{Ctrl, C},
		},
		{
			name:   "special key terminal",
			stroke: "ctrl+enter",
			want:   []Code{Ctrl, Enter},
		},
		{
			name:   "pointer terminal",
			stroke: "shift+mouseleft",
			want:   []Code{Shift, MouseLeft},
		},
		{
			name:   "whitespace tolerated",
			stroke: " ctrl + w ",
			want:   []Code{Ctrl, W},
		},
		{
			name:    "empty",
			stroke:  "",
			wantErr: true,
		},
		{
			name:    "unknown code",
			stroke:  "ctrl+zap",
			wantErr: true,
		},
		{
			name:    "empty component",
			stroke:  "ctrl++w",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStroke(tt.stroke)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStroke(%q) expected error, got %v", tt.stroke, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStroke(%q) unexpected error: %v", tt.stroke, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseStroke(%q) = %v, want %v", tt.stroke, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseStroke(%q)[%d] = %v, want %v", tt.stroke, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatStroke(t *testing.T) {
	got := FormatStroke([]Code{Ctrl, Shift, W})
	if got != "ctrl+shift+w" {
		t.Errorf("FormatStroke = %q, want %q", got, "ctrl+shift+w")
	}

	// Round trip
	codes, err := ParseStroke(got)
	if err != nil {
		t.Fatalf("ParseStroke(%q) error: %v", got, err)
	}
	if len(codes) != 3 || codes[0] != Ctrl || codes[1] != Shift || codes[2] != W {
		t.Errorf("round trip = %v", codes)
	}
}
