package tasks

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"windows absolute", `D:\music\cache\subtitles\a.vtt`, "cache/subtitles/a.vtt"},
		{"unix absolute", "/media/x/cache/subtitles/a.vtt", "cache/subtitles/a.vtt"},
		{"lyrics cache dir", "/srv/app/cache/lyrics/song.lrc", "cache/lyrics/song.lrc"},
		{"case insensitive match keeps original casing", "/x/Cache/Subtitles/A.vtt", "Cache/Subtitles/A.vtt"},
		{"url encoded", "cache%2Fsubtitles%2Fa%20b.vtt", "cache/subtitles/a b.vtt"},
		{"query string stripped", "cache/subtitles/a.vtt?v=2", "cache/subtitles/a.vtt"},
		{"no cache segment strips one leading slash", "/plain/file.vtt", "plain/file.vtt"},
		{"relative path untouched", "plain/file.vtt", "plain/file.vtt"},
		{"bad percent escape falls back to raw", "cache/subtitles/a%zz.vtt", "cache/subtitles/a%zz.vtt"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePath(tc.raw); got != tc.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRoutingKey(t *testing.T) {
	win := RoutingKey("translate", `D:\music\cache\subtitles\a.vtt`)
	nix := RoutingKey("translate", "/media/x/cache/subtitles/a.vtt")

	if win != nix {
		t.Errorf("keys differ: %q vs %q", win, nix)
	}
	if want := "task-translate-cache/subtitles/a.vtt"; win != want {
		t.Errorf("RoutingKey = %q, want %q", win, want)
	}
}

func TestKindLabels(t *testing.T) {
	tests := []struct {
		kind     Kind
		label    string
		endpoint string
	}{
		{Translate, "translate", "/api/process_subtitle"},
		{Correct, "correct", "/api/process_subtitle"},
		{Transcribe, "transcribe", "/api/generate_subtitle"},
		{Glossary, "glossary", "/api/generate_glossary"},
	}

	for _, tc := range tests {
		if got := tc.kind.Label(); got != tc.label {
			t.Errorf("Label() = %q, want %q", got, tc.label)
		}
		if got := tc.kind.Endpoint(); got != tc.endpoint {
			t.Errorf("Endpoint() = %q, want %q", got, tc.endpoint)
		}
		k, ok := KindFromLabel(tc.label)
		if !ok || k != tc.kind {
			t.Errorf("KindFromLabel(%q) = %v, %v", tc.label, k, ok)
		}
	}

	if _, ok := KindFromLabel("bogus"); ok {
		t.Error("expected unknown label to fail")
	}
}
