package gallery

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/fading"
	"github.com/kerbaras/gallery/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	content *data.Content
	err     error
	calls   int
}

func (s *stubSource) Fetch(ctx context.Context) (*data.Content, error) {
	s.calls++
	return s.content, s.err
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func rick() *data.Content {
	return &data.Content{Results: []data.Character{
		{ID: 1, Name: "Rick", Image: "http://x/r.png", Status: "Alive", Gender: "Male", Type: "Human"},
	}}
}

var keyPattern = regexp.MustCompile(`data-key="(\d+)"`)

func render(t *testing.T, content *data.Content) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Page(content).Render(context.Background(), &b))
	return b.String()
}

func TestBuildCards(t *testing.T) {
	content := &data.Content{Results: []data.Character{
		{ID: 3, Name: "Summer"},
		{ID: 1, Name: "Rick"},
		{ID: 2, Name: "Morty"},
	}}

	cards := BuildCards(content)

	require.Len(t, cards, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{cards[0].Key, cards[1].Key, cards[2].Key})
	for _, card := range cards {
		assert.Equal(t, fading.Loading, card.Image.State())
		assert.Equal(t, CardImageSize, card.Image.Options().Width)
		assert.Equal(t, CardImageSize, card.Image.Options().Height)
	}
	assert.NotSame(t, cards[0].Image, cards[1].Image)
}

func TestBuildCardsEmpty(t *testing.T) {
	assert.Empty(t, BuildCards(nil))
	assert.Empty(t, BuildCards(&data.Content{}))
}

func TestCardLines(t *testing.T) {
	card := NewCard(data.Character{ID: 1, Status: "Dead", Gender: "Female"})

	assert.Equal(t, "Status : Dead", card.StatusLine())
	assert.Equal(t, "Gender : Female", card.GenderLine())
}

func TestPageRendersExample(t *testing.T) {
	page := render(t, rick())

	assert.Equal(t, 1, strings.Count(page, "data-key="))
	assert.Contains(t, page, `<h2 class="font-bold text-xl text-gray-900">Rick</h2>`)
	assert.Contains(t, page, "Status : Alive")
	assert.Contains(t, page, "Gender : Male")
	assert.Contains(t, page, `src="http://x/r.png"`)
	assert.Contains(t, page, `data-state="loading"`)
	assert.Contains(t, page, "blur-2xl scale-120")
	assert.Contains(t, page, `data-object-fit="cover"`)
	assert.Contains(t, page, `data-layout="responsive"`)
	assert.Contains(t, page, `width="300" height="300"`)
	// type is carried but never shown
	assert.NotContains(t, page, "Human")
}

func TestPageOneCardPerRecord(t *testing.T) {
	content := &data.Content{}
	for i := 1; i <= 20; i++ {
		content.Results = append(content.Results, data.Character{ID: i, Name: "c"})
	}

	page := render(t, content)

	matches := keyPattern.FindAllStringSubmatch(page, -1)
	require.Len(t, matches, 20)
	seen := map[string]bool{}
	for _, m := range matches {
		assert.False(t, seen[m[1]], "duplicate key %s", m[1])
		seen[m[1]] = true
	}
}

func TestPageEmpty(t *testing.T) {
	page := render(t, &data.Content{})

	assert.NotContains(t, page, "data-key=")
	assert.Contains(t, page, `md:gap-10 gap-5"></div>`)
}

func TestPageEscapesText(t *testing.T) {
	page := render(t, &data.Content{Results: []data.Character{
		{ID: 1, Name: `<script>alert("x")</script>`, Status: "A&B"},
	}})

	assert.NotContains(t, page, `<script>alert`)
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Contains(t, page, "Status : A&amp;B")
}

func TestImageViewReady(t *testing.T) {
	img := fading.New(fading.Options{Src: "http://x/r.png", ObjectFit: "contain", Layout: "fixed"})
	img.Complete()

	var b strings.Builder
	require.NoError(t, ImageView(img).Render(context.Background(), &b))

	assert.Contains(t, b.String(), `data-state="ready"`)
	assert.Contains(t, b.String(), "blur-0 scale-100")
	assert.Contains(t, b.String(), "object-fit:cover")
	assert.NotContains(t, b.String(), "contain")
}

func TestPageIncludesReadyHook(t *testing.T) {
	page := render(t, rick())

	assert.Contains(t, page, `onload="gallery.ready(this)"`)
	assert.Contains(t, page, "window.gallery = {")
	assert.Contains(t, page, `class="bg-gray-400 transition duration-1000 blur-2xl scale-120"`)
}

func TestImageViewSanitizesSource(t *testing.T) {
	img := fading.New(fading.Options{Src: "javascript:alert(1)"})

	var b strings.Builder
	require.NoError(t, ImageView(img).Render(context.Background(), &b))

	assert.NotContains(t, b.String(), "javascript:")
}

func TestGenerate(t *testing.T) {
	source := &stubSource{content: rick()}
	m := metrics.NewManager()

	var buf bytes.Buffer
	err := NewGenerator(source, m, nil).Generate(context.Background(), &buf)

	require.NoError(t, err)
	assert.Equal(t, 1, source.calls)
	assert.Contains(t, buf.String(), "<!doctype html>")
	assert.Contains(t, buf.String(), "Status : Alive")
}

func TestGenerateFetchFailure(t *testing.T) {
	source := &stubSource{err: errors.New("connection refused")}

	var buf bytes.Buffer
	err := Generate(context.Background(), source, &buf)

	assert.ErrorContains(t, err, "connection refused")
	assert.Zero(t, buf.Len(), "no partial page may be written")
}

func TestGenerateWriteFailure(t *testing.T) {
	err := Generate(context.Background(), &stubSource{content: rick()}, errWriter{})
	assert.Error(t, err)
}

func TestSection(t *testing.T) {
	card := NewCard(rick().Results[0])

	var b strings.Builder
	require.NoError(t, Section(card, "../images/card-001.png").Render(context.Background(), &b))
	assert.Contains(t, b.String(), `src="../images/card-001.png"`)
	assert.Contains(t, b.String(), "<h2>Rick</h2>")
	assert.Contains(t, b.String(), "<p>Status : Alive</p>")

	b.Reset()
	require.NoError(t, Section(card, "").Render(context.Background(), &b))
	assert.NotContains(t, b.String(), "<img")
	assert.Contains(t, b.String(), "<p>Gender : Male</p>")
}
