package helpers

import "testing"

func TestAppendSlashUrl(t *testing.T) {
	tests := []struct{ in, want string }{
		{"http://localhost", "http://localhost/"},
		{"http://localhost/", "http://localhost/"},
		{"", "/"},
	}
	for _, tt := range tests {
		if got := AppendSlashUrl(tt.in); got != tt.want {
			t.Errorf("AppendSlashUrl(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMakeUrlWithPort(t *testing.T) {
	if got := MakeUrlWithPort("http://localhost", "11434"); got != "http://localhost:11434/" {
		t.Errorf("MakeUrlWithPort = %q", got)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct{ in, want string }{
		{"  a   b\tc  ", "a b c"},
		{"single", "single"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct{ in, want string }{
		{"First sentence. Second sentence.", "First sentence."},
		{"No terminator at all", "No terminator at all"},
		{"Question? Answer.", "Question?"},
		{"  padded. more", "padded."},
	}
	for _, tt := range tests {
		if got := FirstSentence(tt.in); got != tt.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
