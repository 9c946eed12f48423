package assets

import "testing"

func TestCleanAssetPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"kill.wav", "sounds/kill.wav"},
		{"assets/sounds/kill.wav", "sounds/kill.wav"},
		{"sounds/kill.wav", "sounds/kill.wav"},
		{"/home/dev/ninjaroll/assets/sounds/death.wav", "sounds/death.wav"},
		{"/tmp/death.wav", "sounds/death.wav"},
	}
	for _, c := range cases {
		if got := cleanAssetPath(c.in); got != c.want {
			t.Errorf("cleanAssetPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEmbeddedSounds(t *testing.T) {
	for _, name := range []string{"wall_bounce", "kill", "death", "move", "activate", "retract", "shoot", "victory"} {
		b, err := LoadAudio(name + ".wav")
		if err != nil {
			t.Fatalf("LoadAudio(%s): %v", name, err)
		}
		if len(b) < 44 || string(b[:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
			t.Fatalf("%s is not a wav file", name)
		}
	}
}
