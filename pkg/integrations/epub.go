package integrations

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/kerbaras/gallery/pkg/services"
	"go.uber.org/zap"
)

const defaultImageExt = ".jpeg"

// ImageFetcher downloads card images.
type ImageFetcher interface {
	Load(ctx context.Context, url string) (services.ImageData, error)
}

// EPubBuilder exports a gallery as a book with one section per card.
type EPubBuilder struct {
	outputDir string
	images    ImageFetcher
	title     string
	author    string
	logger    *zap.Logger
}

func NewEPubBuilder(outputDir string, images ImageFetcher, logger *zap.Logger) *EPubBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EPubBuilder{
		outputDir: outputDir,
		images:    images,
		title:     "Characters",
		author:    "The Rick and Morty API",
		logger:    logger,
	}
}

// SetTitle overrides the book title.
func (b *EPubBuilder) SetTitle(title string) {
	if title != "" {
		b.title = title
	}
}

// Build writes the book to outputDir/filename and returns its path. Cards whose
// image cannot be added keep their text.
func (b *EPubBuilder) Build(ctx context.Context, content *data.Content, filename string) (string, error) {
	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(b.title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}
	e.SetAuthor(b.author)
	e.SetLang("en")
	e.SetDescription("A gallery of characters with their status and gender.")

	for i, card := range gallery.BuildCards(content) {
		imagePath := b.addImage(ctx, e, i, card)

		var body strings.Builder
		if err := gallery.Section(card, imagePath).Render(ctx, &body); err != nil {
			return "", fmt.Errorf("failed to render card %d: %w", card.Key, err)
		}

		if _, err := e.AddSection(body.String(), card.Name, fmt.Sprintf("card-%03d.xhtml", i+1), ""); err != nil {
			return "", fmt.Errorf("failed to add section for card %d: %w", card.Key, err)
		}
	}

	outputPath := filepath.Join(b.outputDir, sanitizeFilename(filename))
	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// addImage downloads the card image, embeds it and returns its internal
// path, or "" when the image is unusable.
func (b *EPubBuilder) addImage(ctx context.Context, e *epub.Epub, index int, card gallery.Card) string {
	src := card.Image.Options().Src
	if src == "" {
		return ""
	}

	img, err := b.images.Load(ctx, src)
	if err != nil {
		b.logger.Warn("Skipping card image",
			zap.Int("id", card.Key),
			zap.String("src", src),
			zap.Error(err))
		return ""
	}

	dataURL := "data:" + img.ContentType + ";base64," + base64.StdEncoding.EncodeToString(img.Content)
	internalPath, err := e.AddImage(dataURL, fmt.Sprintf("card-%03d%s", index+1, imageExt(src)))
	if err != nil {
		b.logger.Warn("Skipping card image",
			zap.Int("id", card.Key),
			zap.String("src", src),
			zap.Error(err))
		return ""
	}
	return internalPath
}

// imageExt returns the extension of the image URL path.
func imageExt(src string) string {
	u, err := url.Parse(src)
	if err != nil {
		return defaultImageExt
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if !isImageFile("x" + ext) {
		return defaultImageExt
	}
	return ext
}

// isImageFile checks if a file has an image extension
func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "gallery"
	}
	if !strings.HasSuffix(strings.ToLower(result), ".epub") {
		result += ".epub"
	}
	return result
}
