package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/gallery/pkg/app/components"
	"github.com/kerbaras/gallery/pkg/app/styles"
	"github.com/kerbaras/gallery/pkg/data"
	"github.com/kerbaras/gallery/pkg/gallery"
	"github.com/kerbaras/gallery/pkg/integrations"
	"github.com/kerbaras/gallery/pkg/sources"
	"go.uber.org/zap"
)

// GalleryScreen fetches the character listing and shows it as a grid of
// cards whose images fade in as they load.
type GalleryScreen struct {
	ctx     context.Context
	source  sources.Source
	images  integrations.ImageFetcher
	thumb   *integrations.Thumbnail
	logger  *zap.Logger
	spinner spinner.Model
	grid    *components.CardGrid
	loads   *components.LoadTracker

	loading bool
	width   int
	height  int
	err     error
}

func NewGalleryScreen(ctx context.Context, source sources.Source, images integrations.ImageFetcher, thumb *integrations.Thumbnail, logger *zap.Logger) *GalleryScreen {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	grid := components.NewCardGrid()
	grid.Placeholder = thumb.Placeholder(styles.Placeholder)

	return &GalleryScreen{
		ctx:     ctx,
		source:  source,
		images:  images,
		thumb:   thumb,
		logger:  logger,
		spinner: s,
		grid:    grid,
		loads:   components.NewLoadTracker(20),
		loading: true,
	}
}

// Err is the fetch failure that ended the program, if any.
func (s *GalleryScreen) Err() error {
	return s.err
}

func (s *GalleryScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.fetchContent)
}

func (s *GalleryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.grid.Width = msg.Width
		s.grid.Height = msg.Height - 6
		s.loads.SetWidth(min(40, msg.Width/3))

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "up", "k":
			s.grid.ScrollUp()
		case "down", "j":
			s.grid.ScrollDown()
		}

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case contentLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.err = msg.err
			return s, tea.Quit
		}
		return s, s.showContent(msg.content)

	case imageLoadedMsg:
		s.imageLoaded(msg)
	}

	return s, nil
}

func (s *GalleryScreen) showContent(content *data.Content) tea.Cmd {
	cards := gallery.BuildCards(content)
	items := make([]components.CardItem, len(cards))
	cmds := make([]tea.Cmd, len(cards))
	for i, card := range cards {
		items[i] = components.CardItem{Card: card}
		cmds[i] = s.loadImage(i, card)
	}
	s.grid.SetItems(items)
	s.loads.Reset(len(cards))
	s.logger.Info("Gallery ready", zap.Int("cards", len(cards)))
	return tea.Batch(cmds...)
}

// imageLoaded completes the card's image on success. A failed load leaves
// the card in its loading treatment.
func (s *GalleryScreen) imageLoaded(msg imageLoadedMsg) {
	item := s.grid.At(msg.index)
	if item == nil {
		return
	}

	if msg.err != nil {
		s.loads.Failed()
		s.logger.Warn("Image load failed",
			zap.Int("key", item.Card.Key),
			zap.String("src", item.Card.Image.Options().Src),
			zap.Error(msg.err))
		return
	}

	if item.Card.Image.Complete() {
		item.Art = msg.art
		s.loads.Loaded()
	}
}

func (s *GalleryScreen) View() string {
	if s.err != nil {
		return styles.ErrorStyle.Render(fmt.Sprintf("Error: %s", s.err)) + "\n"
	}

	if s.loading {
		return fmt.Sprintf("\n %s Fetching characters...\n", s.spinner.View())
	}

	header := styles.TitleStyle.Render("Rick and Morty")
	status := s.loads.View()
	help := styles.HelpStyle.Render("↑/k: up • ↓/j: down • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, status, s.grid.View(), help)
}

type contentLoadedMsg struct {
	content *data.Content
	err     error
}

// imageLoadedMsg identifies its card by grid position; ids from the API
// are not guaranteed unique.
type imageLoadedMsg struct {
	index int
	art   string
	err   error
}

func (s *GalleryScreen) fetchContent() tea.Msg {
	content, err := s.source.Fetch(s.ctx)
	return contentLoadedMsg{content: content, err: err}
}

func (s *GalleryScreen) loadImage(index int, card gallery.Card) tea.Cmd {
	src := card.Image.Options().Src
	return func() tea.Msg {
		img, err := s.images.Load(s.ctx, src)
		if err != nil {
			return imageLoadedMsg{index: index, err: err}
		}
		art, err := s.thumb.Render(img.Content)
		if err != nil {
			return imageLoadedMsg{index: index, err: err}
		}
		return imageLoadedMsg{index: index, art: art}
	}
}
