package platform

import "testing"

func TestClassifyUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want DeviceClass
	}{
		{"empty", "", DeviceDesktop},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0", DeviceDesktop},
		{"desktop linux", "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", DeviceDesktop},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", DeviceMobile},
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", DeviceMobile},
		{"android tablet", "Mozilla/5.0 (Linux; Android 14; SM-X710) Safari/537.36", DeviceTablet},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) Mobile/15E148", DeviceTablet},
		{"generic tablet", "Mozilla/5.0 (Tablet; rv:121.0) Gecko/121.0 Firefox/121.0", DeviceTablet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyUserAgent(tt.ua); got != tt.want {
				t.Errorf("ClassifyUserAgent(%q) = %q, want %q", tt.ua, got, tt.want)
			}
		})
	}
}

func TestAudioStateString(t *testing.T) {
	tests := []struct {
		state AudioState
		want  string
	}{
		{AudioSuspended, "suspended"},
		{AudioRunning, "running"},
		{AudioClosed, "closed"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("AudioState(%d).String() = %q, want %q", int(tt.state), got, tt.want)
		}
	}
}

func TestShaderStageString(t *testing.T) {
	if got := StageVertex.String(); got != "vertex" {
		t.Errorf("StageVertex.String() = %q, want %q", got, "vertex")
	}
	if got := StageFragment.String(); got != "fragment" {
		t.Errorf("StageFragment.String() = %q, want %q", got, "fragment")
	}
}

func TestCompileErrorMessage(t *testing.T) {
	err := &CompileError{Stage: StageFragment, Log: "unexpected token"}
	want := "platform: fragment shader compilation failed: unexpected token"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
