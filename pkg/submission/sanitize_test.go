package submission

import "testing"

func TestSanitizeText(t *testing.T) {
	cases := map[string]string{
		"":                          "",
		"  2 ":                      "2",
		"<b>05/21/1990</b>":         "05/21/1990",
		"05/21/1990\n":              "05/21/1990",
		"a\tb   c":                  "a b c",
		"<script>alert(1)</script>": "",
		"Tom &amp; Jerry":           "Tom & Jerry",

		"&lt;script&gt;alert(1)&lt;/script&gt;": "",
		"&lt;b&gt;1&lt;/b&gt;":                  "1",
		"&amp;lt;b&amp;gt;1&amp;lt;/b&amp;gt;":  "1",
		"&amp;amp;lt;i&amp;amp;gt;2":            "2",
		"1 &lt; 2":                              "1 2",
	}
	for in, want := range cases {
		if got := SanitizeText(in); got != want {
			t.Errorf("SanitizeText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeText_NoMarkupSurvives(t *testing.T) {
	inputs := []string{
		"&lt;img src=x onerror=alert(1)&gt;",
		"&#60;b&#62;2&#60;/b&#62;",
		"&amp;lt;script&amp;gt;x",
		"<<b>>1",
	}
	for _, in := range inputs {
		got := SanitizeText(in)
		for _, r := range got {
			if r == '<' || r == '>' {
				t.Errorf("SanitizeText(%q) = %q still contains markup", in, got)
				break
			}
		}
	}
}
