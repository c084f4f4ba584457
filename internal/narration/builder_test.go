package narration

import "testing"

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		lang string
		want string
	}{
		{
			name: "collapses whitespace runs",
			raw:  "Hello   world\n\nsecond  paragraph",
			lang: "en",
			want: "Hello world second paragraph",
		},
		{
			name: "tabs and newlines collapse",
			raw:  "one\ttwo\r\nthree",
			lang: "en",
			want: "one two three",
		},
		{
			name: "empty text gets placeholder",
			raw:  "",
			lang: "en",
			want: "No text found.",
		},
		{
			name: "whitespace-only text gets placeholder",
			raw:  "  \n\t ",
			lang: "en",
			want: "No text found.",
		},
		{
			name: "vietnamese placeholder",
			raw:  "",
			lang: "vi",
			want: "Không tìm thấy văn bản.",
		},
		{
			name: "unknown language falls back to english placeholder",
			raw:  "",
			lang: "xx",
			want: "No text found.",
		},
		{
			name: "regional code resolves placeholder",
			raw:  "",
			lang: "zh-TW",
			want: "未找到文本。",
		},
		{
			name: "fullwidth marks get trailing space",
			raw:  "第一句。第二句！第三句",
			lang: "ja",
			want: "第一句。 第二句！ 第三句",
		},
		{
			name: "no space before fullwidth marks",
			raw:  "第一句 。第二句",
			lang: "zh",
			want: "第一句。 第二句",
		},
		{
			name: "latin language punctuation untouched",
			raw:  "One.Two",
			lang: "en",
			want: "One.Two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.raw, tt.lang)
			if got != tt.want {
				t.Errorf("Build(%q, %q) = %q, want %q", tt.raw, tt.lang, got, tt.want)
			}
		})
	}
}

func TestBuildIdempotent(t *testing.T) {
	inputs := []struct {
		raw  string
		lang string
	}{
		{"Hello   world", "en"},
		{"第一句。第二句！終わり。", "ja"},
		{"句子一 。 句子二，句子三", "zh"},
		{"", "en"},
	}

	for _, in := range inputs {
		once := Build(in.raw, in.lang)
		twice := Build(once, in.lang)
		if once != twice {
			t.Errorf("Build not idempotent for %q (%s): first %q, second %q", in.raw, in.lang, once, twice)
		}
	}
}
