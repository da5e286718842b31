package transcription

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"codeberg.org/snonux/phonconv/internal/phonetic"
)

const (
	arpaExample   = "g uu 1 . g ax 0 l . b a 2 ng . ax 0"
	xsampaExample = `g u: " . g @ - l . b { % N . @ -`
)

func newTestConverter() *Converter {
	return NewConverter(phonetic.English())
}

func TestConvertEndToEnd(t *testing.T) {
	conv := newTestConverter()

	tests := []struct {
		name string
		text string
		from phonetic.Notation
		to   phonetic.Notation
		want string
	}{
		{
			name: "arpabet to xsampa",
			text: arpaExample,
			from: phonetic.ARPABET,
			to:   phonetic.XSAMPA,
			want: xsampaExample + " ",
		},
		{
			name: "arpabet to ipa",
			text: arpaExample,
			from: phonetic.ARPABET,
			to:   phonetic.IPA,
			want: "ˈgu:.gəl.ˌbæŋ.ə",
		},
		{
			name: "xsampa to arpabet",
			text: xsampaExample,
			from: phonetic.XSAMPA,
			to:   phonetic.ARPABET,
			want: arpaExample + " ",
		},
		{
			name: "xsampa to ipa",
			text: xsampaExample,
			from: phonetic.XSAMPA,
			to:   phonetic.IPA,
			want: "ˈgu:.gəl.ˌbæŋ.ə",
		},
		{
			name: "arpabet to arpabet",
			text: "sh ii 1 p",
			from: phonetic.ARPABET,
			to:   phonetic.ARPABET,
			want: "sh ii 1 p ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.text, tt.from, tt.to)
			if err != nil {
				t.Fatalf("Convert error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q, %s, %s) = %q, want %q", tt.text, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertStressHoisting(t *testing.T) {
	conv := newTestConverter()

	tests := []struct {
		name string
		text string
		from phonetic.Notation
		want string
	}{
		{"first syllable", "g uu 1 . g ax 0 l", phonetic.ARPABET, "ˈgu:.gəl"},
		{"later syllable", "b ax 0 . n a 1 n", phonetic.ARPABET, "bə.ˈnæn"},
		{"secondary then primary", "k o 2 n . t e 1 n t", phonetic.ARPABET, "ˌkɒn.ˈtɛnt"},
		{"glued primary", "g uu1 . g ax0 l", phonetic.ARPABET, "ˈgu:.gəl"},
		{"glued xsampa", `g u:" . g @- l`, phonetic.XSAMPA, "ˈgu:.gəl"},
		{"stress on bare vowel", "ax 1", phonetic.ARPABET, "ˈə"},
		{"stress before anything", "1 p", phonetic.ARPABET, "ˈp"},
		{"stress right after boundary", "p . 1 t", phonetic.ARPABET, "p.ˈt"},
		{"multibyte syllable", "th ii 1 . t a 2", phonetic.ARPABET, "ˈθi:.ˌtæ"},
		{"diphthong", "au 1 . t ax 0", phonetic.ARPABET, "ˈaʊ.tə"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.text, tt.from, phonetic.IPA)
			if err != nil {
				t.Fatalf("Convert(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestConvertPrimaryStressPrecedesVowel(t *testing.T) {
	got, err := newTestConverter().Convert("g uu 1 . g ax 0 l", phonetic.ARPABET, phonetic.IPA)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}

	stress := strings.Index(got, "ˈ")
	vowel := strings.Index(got, "u:")
	boundary := strings.Index(got, ".")
	if stress < 0 || stress > vowel || vowel > boundary {
		t.Errorf("Convert = %q, want primary stress before the first vowel", got)
	}
	if strings.Count(got, "ˈ")+strings.Count(got, "ˌ") != 1 {
		t.Errorf("Convert = %q, unstressed marker must not produce a glyph", got)
	}
}

func TestConvertSeparators(t *testing.T) {
	conv := newTestConverter()
	inputs := []string{
		arpaExample,
		"p",
		"sh ii 1 p",
		"ch e 1 . r ii 0",
		"ai1 . r ax0 n",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			xs, err := conv.Convert(in, phonetic.ARPABET, phonetic.XSAMPA)
			if err != nil {
				t.Fatalf("Convert to X-SAMPA error: %v", err)
			}
			if !strings.HasSuffix(xs, " ") || strings.Contains(xs, "  ") || strings.HasPrefix(xs, " ") {
				t.Errorf("X-SAMPA output %q: every unit must be followed by exactly one space", xs)
			}

			units := strings.Fields(in)
			glued := 0
			for _, u := range units {
				if len(u) > 1 && strings.ContainsAny(u[len(u)-1:], "012") {
					glued++
				}
			}
			if got, want := strings.Count(xs, " "), len(units)+glued; got != want {
				t.Errorf("X-SAMPA output %q has %d separators, want %d", xs, got, want)
			}

			ipa, err := conv.Convert(in, phonetic.ARPABET, phonetic.IPA)
			if err != nil {
				t.Fatalf("Convert to IPA error: %v", err)
			}
			if strings.Contains(ipa, " ") {
				t.Errorf("IPA output %q must not contain spaces", ipa)
			}
		})
	}
}

func TestConvertGluedTokenSplitsIntoTwoUnits(t *testing.T) {
	got, err := newTestConverter().Convert("ax1", phonetic.ARPABET, phonetic.XSAMPA)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if got != `@ " ` {
		t.Errorf("Convert = %q, want %q", got, `@ " `)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	conv := newTestConverter()

	var single []string
	for _, p := range phonetic.English().Entries() {
		if p.ARPABET != p.XSAMPA {
			single = append(single, p.ARPABET+" ")
		}
	}

	multi := []string{
		arpaExample + " ",
		"sh ii 1 p ",
		"ch e 1 . r ii 0 ",
		"r a 1 . b i 0 t ",
		"jh oi 1 n ",
		"th r uu 1 . dh ax 0 ",
	}

	for _, x := range append(single, multi...) {
		t.Run(x, func(t *testing.T) {
			xs, err := conv.Convert(x, phonetic.ARPABET, phonetic.XSAMPA)
			if err != nil {
				t.Fatalf("to X-SAMPA error: %v", err)
			}
			back, err := conv.Convert(xs, phonetic.XSAMPA, phonetic.ARPABET)
			if err != nil {
				t.Fatalf("back to ARPABET error: %v", err)
			}
			if back != x {
				t.Errorf("round trip %q -> %q -> %q", x, xs, back)
			}
		})
	}
}

func TestConvertInvalidSymbol(t *testing.T) {
	conv := newTestConverter()

	tests := []struct {
		name      string
		text      string
		from      phonetic.Notation
		wantToken string
	}{
		{"unknown arpabet", "zz", phonetic.ARPABET, "zz"},
		{"unknown among valid", "p zz t", phonetic.ARPABET, "zz"},
		{"unknown glued vowel", "zz1", phonetic.ARPABET, "zz"},
		{"xsampa symbol as arpabet", "N", phonetic.ARPABET, "N"},
		{"arpabet symbol as xsampa", "ng", phonetic.XSAMPA, "ng"},
		{"arpabet stress as xsampa", "@ 1", phonetic.XSAMPA, "1"},
		{"double space", "p  t", phonetic.ARPABET, ""},
		{"leading space", " p", phonetic.ARPABET, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.text, tt.from, phonetic.XSAMPA)
			if got != "" {
				t.Errorf("Convert returned partial output %q", got)
			}

			var invalid *InvalidSymbolError
			if !errors.As(err, &invalid) {
				t.Fatalf("error = %v, want InvalidSymbolError", err)
			}
			if invalid.Notation != tt.from || invalid.Token != tt.wantToken {
				t.Errorf("error = {%s %q}, want {%s %q}", invalid.Notation, invalid.Token, tt.from, tt.wantToken)
			}

			var unknown *phonetic.UnknownSymbolError
			if !errors.As(err, &unknown) {
				t.Errorf("error %v does not wrap UnknownSymbolError", err)
			}
		})
	}
}

func TestConvertInvalidSymbolMessage(t *testing.T) {
	_, err := newTestConverter().Convert("zz", phonetic.ARPABET, phonetic.XSAMPA)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != `ARPABET "zz": not recognised` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestConvertUnsupportedNotations(t *testing.T) {
	conv := newTestConverter()

	if _, err := conv.Convert("ˈgu:", phonetic.IPA, phonetic.ARPABET); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("from IPA error = %v, want ErrUnsupportedInput", err)
	}
	if _, err := conv.Convert("p", phonetic.Notation(7), phonetic.IPA); !errors.Is(err, ErrUnsupportedInput) {
		t.Errorf("from invalid error = %v, want ErrUnsupportedInput", err)
	}
	if _, err := conv.Convert("p", phonetic.ARPABET, phonetic.Notation(7)); !errors.Is(err, ErrUnsupportedOutput) {
		t.Errorf("to invalid error = %v, want ErrUnsupportedOutput", err)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	got, err := newTestConverter().Convert("", phonetic.ARPABET, phonetic.IPA)
	if err != nil {
		t.Fatalf("Convert error: %v", err)
	}
	if got != "" {
		t.Errorf("Convert(\"\") = %q, want empty", got)
	}
}

func TestConvertConcurrent(t *testing.T) {
	conv := newTestConverter()

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.Convert(arpaExample, phonetic.ARPABET, phonetic.IPA)
			if err != nil {
				errs <- err
				return
			}
			if got != "ˈgu:.gəl.ˌbæŋ.ə" {
				errs <- errors.New("unexpected output " + got)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestHoistStress(t *testing.T) {
	tests := []struct {
		buf    string
		marker string
		want   string
	}{
		{"", "ˈ", "ˈ"},
		{"gu:", "ˈ", "ˈgu:"},
		{"gu:.gə", "ˌ", "gu:.ˌgə"},
		{"a.b.cd", "ˈ", "a.b.ˈcd"},
		{"gu:.", "ˈ", "gu:.ˈ"},
		{"gə", "", "gə"},
	}

	for _, tt := range tests {
		t.Run(tt.buf, func(t *testing.T) {
			var b strings.Builder
			b.WriteString(tt.buf)
			hoistStress(&b, tt.marker)
			if got := b.String(); got != tt.want {
				t.Errorf("hoistStress(%q, %q) = %q, want %q", tt.buf, tt.marker, got, tt.want)
			}
		})
	}
}
