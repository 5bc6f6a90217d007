package normalize_test

import (
	"testing"

	"github.com/fwojciec/artlot/normalize"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text is trimmed", "  Pablo Picasso  ", "Pablo Picasso"},
		{"collapses newlines and carriage returns", "oil on\r\ncanvas\n\n signed", "oil on canvas signed"},
		{"collapses non-breaking spaces", "24\u00a0x\u00a036 in", "24 x 36 in"},
		{"strips inline tags without splitting words", "Pi<b>cas</b>so", "Picasso"},
		{"block tags separate words", "<p>Provenance</p><p>Estate of the artist</p>", "Provenance Estate of the artist"},
		{"line breaks separate words", "signed<br>dated 1954", "signed dated 1954"},
		{"decodes entities", "Christie&#39;s &amp; Sotheby&#x27;s", "Christie's & Sotheby's"},
		{"drops script content", "<p>Lot 12</p><script>var x = 1;</script>", "Lot 12"},
		{"keeps stray angle brackets", "5 < 6", "5 < 6"},
		{"keeps escaped markup escaped", "Sculpture &lt;b&gt;bronze&lt;/b&gt; cast", "Sculpture &lt;b>bronze&lt;/b> cast"},
		{"keeps escaped entities escaped", "AT&amp;amp;T", "AT&amp;amp;T"},
		{"decodes a lone ampersand", "Impressionist &amp; Modern Art", "Impressionist & Modern Art"},
		{"escapes decoded comment openers", "a &lt;!-- b", "a &lt;!-- b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.Text(tt.in))
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"<div class=\"lot-information\"><h1>16</h1>\n<p>Oil on canvas</p></div>",
		"GBP 1,234,500",
		"  a\tb\nc  ",
		"Christie&#39;s London",
		"Sculpture &lt;b&gt;bronze&lt;/b&gt; cast",
		"AT&amp;amp;T",
		"a &lt;i&gt; b",
		"&amp;lt; &amp;copy &lt;/p&gt;",
		"Impressionist &amp; Modern Art",
		"&lt;&lt;b&gt;b&gt;",
		"R&amp;D &lt; 5 &gt; 4",
		"&lt;?xml?&gt; &lt;p>x",
	}

	for _, in := range inputs {
		once := normalize.Text(in)
		assert.Equal(t, once, normalize.Text(once), "input %q", in)
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for no fragments", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, normalize.Join(nil))
		assert.Empty(t, normalize.Join([]string{}))
	})

	t.Run("joins fragments with a single space", func(t *testing.T) {
		t.Parallel()
		got := normalize.Join([]string{"signed and dated\n", "  'Picasso 1954'", "<i>oil on canvas</i>"})
		assert.Equal(t, "signed and dated 'Picasso 1954' oil on canvas", got)
	})

	t.Run("drops empty fragments from the result", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a b", normalize.Join([]string{"a", "", " ", "b"}))
	})
}

func TestStripAccents(t *testing.T) {
	t.Parallel()

	t.Run("removes acute accent", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Degas", normalize.StripAccents("Degás"))
	})

	t.Run("removes grave and circumflex accents", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Musee de l'Orangerie", normalize.StripAccents("Musée de l'Orangerie"))
		assert.Equal(t, "Chateau", normalize.StripAccents("Château"))
	})

	t.Run("keeps diaeresis in decomposed form", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Mu\u0308ller", normalize.StripAccents("M\u00fcller"))
	})

	t.Run("keeps cedilla", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Franc\u0327ois", normalize.StripAccents("Fran\u00e7ois"))
	})

	t.Run("leaves plain ASCII untouched", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Pablo Picasso", normalize.StripAccents("Pablo Picasso"))
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, normalize.StripAccents(""))
	})
}
