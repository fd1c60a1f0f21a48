package handlers

import (
	"testing"
)

func TestParseCommandToTask(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType string
		wantArgs map[string]string
		wantErr  bool
	}{
		{
			name:     "weather with lang",
			text:     "/weather 52.52 13.405 EN",
			wantType: "weather",
			wantArgs: map[string]string{"lat": "52.52", "lng": "13.405", "lang": "en"},
		},
		{
			name:     "weather without lang",
			text:     "/weather -33.86 151.2",
			wantType: "weather",
			wantArgs: map[string]string{"lat": "-33.86", "lng": "151.2"},
		},
		{
			name:     "geocode multi-word query",
			text:     "/geocode Invalidenstr 116, Berlin",
			wantType: "geocode",
			wantArgs: map[string]string{"q": "Invalidenstr 116, Berlin"},
		},
		{name: "weather missing lng", text: "/weather 52.52", wantErr: true},
		{name: "weather bad lat", text: "/weather north 13.4", wantErr: true},
		{name: "geocode missing query", text: "/geocode", wantErr: true},
		{name: "unknown command", text: "/forecast 52.5 13.4", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task, err := parseCommandToTask(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.Title != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, task.Title)
			}
			for k, v := range tt.wantArgs {
				if task.Args[k] != v {
					t.Errorf("arg %s: expected %q, got %q", k, v, task.Args[k])
				}
			}
			if len(task.Args) != len(tt.wantArgs) {
				t.Errorf("expected %d args, got %v", len(tt.wantArgs), task.Args)
			}
		})
	}
}
