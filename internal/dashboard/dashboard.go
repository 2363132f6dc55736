package dashboard

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog"
	"github.com/temidaradev/cryptotracker/internal/market"
	"github.com/temidaradev/esset/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Source provides the coins and logos to display.
type Source interface {
	Coins() []market.CoinMarketEntry
	Logo(key string) (image.Image, bool)
}

// Config represents the configuration for the dashboard.
type Config struct {
	// Source provides the displayed coins.
	Source Source
	// DeviceScale is the device scale factor of the monitor.
	DeviceScale float64
	// Done ends the dashboard when closed.
	Done <-chan struct{}
	// Now returns the current time, defaults to time.Now.
	Now func() time.Time
	// Logger represents the application logger.
	Logger *zerolog.Logger
}

// Validate asserts the config sane inputs.
func (cfg *Config) Validate() error {
	var errs error

	if cfg.Source == nil {
		errs = errors.Join(errs, fmt.Errorf("coin source cannot be nil"))
	}
	if cfg.DeviceScale <= 0 {
		errs = errors.Join(errs, fmt.Errorf("device scale must be positive"))
	}
	if cfg.Logger == nil {
		errs = errors.Join(errs, fmt.Errorf("logger cannot be nil"))
	}

	return errs
}

// faces holds the font faces used by the dashboard.
type faces struct {
	base  text.Face
	small text.Face
	title text.Face
	name  text.Face
}

// region is a clickable area recorded while drawing.
type region struct {
	rect   image.Rectangle
	action func()
}

// Dashboard is the ebiten game rendering the coin charts.
type Dashboard struct {
	cfg   *Config
	faces faces
	scale float64

	navigation     []NavItem
	userNavigation []NavItem
	user           User
	mobileOpen     bool
	userMenuOpen   bool

	scrollY   float64
	maxScroll float64
	regions   []region
	logos     map[string]*ebiten.Image

	solidColorImage *ebiten.Image
}

// Ensure the dashboard implements the ebiten game interface.
var _ ebiten.Game = (*Dashboard)(nil)

// loadFaces creates the font faces for the provided scale.
func loadFaces(scale float64) (faces, error) {
	var f faces
	var err error

	f.base, err = esset.GetFont(goregular.TTF, int(baseFontSize*scale))
	if err != nil {
		return f, fmt.Errorf("loading base font: %w", err)
	}
	f.small, err = esset.GetFont(goregular.TTF, int(smallFontSize*scale))
	if err != nil {
		return f, fmt.Errorf("loading small font: %w", err)
	}
	f.title, err = esset.GetFont(gobold.TTF, int(titleFontSize*scale))
	if err != nil {
		return f, fmt.Errorf("loading title font: %w", err)
	}
	f.name, err = esset.GetFont(goregular.TTF, int(nameFontSize*scale))
	if err != nil {
		return f, fmt.Errorf("loading name font: %w", err)
	}

	return f, nil
}

// New initializes the dashboard.
func New(cfg *Config) (*Dashboard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating dashboard config: %w", err)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	f, err := loadFaces(cfg.DeviceScale)
	if err != nil {
		return nil, err
	}

	navigation := make([]NavItem, len(DefaultNavigation))
	copy(navigation, DefaultNavigation)

	return &Dashboard{
		cfg:            cfg,
		faces:          f,
		scale:          cfg.DeviceScale,
		navigation:     navigation,
		userNavigation: DefaultUserNavigation,
		user:           DefaultUser,
		logos:          make(map[string]*ebiten.Image),
	}, nil
}

// px converts logical pixels to screen pixels.
func (d *Dashboard) px(v float64) float64 {
	return v * d.scale
}

func (d *Dashboard) initSolidColorImage() {
	if d.solidColorImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		d.solidColorImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
}

// onClick records a clickable area for the next update.
func (d *Dashboard) onClick(rect image.Rectangle, action func()) {
	d.regions = append(d.regions, region{rect: rect, action: action})
}

// drawText draws text with its top left corner at x, y.
func (d *Dashboard) drawText(dst *ebiten.Image, s string, x, y float64, face text.Face, clr color.RGBA) {
	esset.DrawText(dst, s, 0, x, y, face, clr)
}

// selectNav marks the named navigation item as current.
func (d *Dashboard) selectNav(name string) {
	for idx := range d.navigation {
		d.navigation[idx].Current = d.navigation[idx].Name == name
	}

	d.mobileOpen = false
	d.cfg.Logger.Info().Str("item", name).Msg("navigation selected")
}

// selectUserNav handles a user menu selection.
func (d *Dashboard) selectUserNav(name string) {
	d.userMenuOpen = false
	d.mobileOpen = false
	d.cfg.Logger.Info().Str("item", name).Msg("user menu selected")
}

// logo returns the drawable logo of the provided coin, if loaded.
func (d *Dashboard) logo(coin *market.CoinMarketEntry) *ebiten.Image {
	key := coin.Key()
	if img, ok := d.logos[key]; ok {
		return img
	}

	src, ok := d.cfg.Source.Logo(key)
	if !ok {
		return nil
	}

	img := ebiten.NewImageFromImage(src)
	d.logos[key] = img

	return img
}

// Update processes input.
func (d *Dashboard) Update() error {
	select {
	case <-d.cfg.Done:
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		d.userMenuOpen = false
		d.mobileOpen = false
	}

	_, dy := ebiten.Wheel()
	if dy != 0 {
		d.scrollY -= dy * d.px(scrollStep)
		d.clampScroll()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pt := image.Pt(ebiten.CursorPosition())

		// Regions drawn last sit on top.
		for idx := len(d.regions) - 1; idx >= 0; idx-- {
			if pt.In(d.regions[idx].rect) {
				d.regions[idx].action()
				return nil
			}
		}

		// Clicking outside an open menu closes it.
		d.userMenuOpen = false
	}

	return nil
}

// clampScroll keeps the scroll offset within the content.
func (d *Dashboard) clampScroll() {
	if d.scrollY > d.maxScroll {
		d.scrollY = d.maxScroll
	}
	if d.scrollY < 0 {
		d.scrollY = 0
	}
}

// Draw renders the dashboard.
func (d *Dashboard) Draw(screen *ebiten.Image) {
	d.initSolidColorImage()
	d.regions = d.regions[:0]

	screen.Fill(colorPage)

	width := screen.Bounds().Dx()
	mobile := float64(width) < d.px(mobileBreak)
	if !mobile {
		d.mobileOpen = false
	}

	// The header and its menus are drawn after the cards so they stay on top.
	top := d.px(headerHeight + titleHeight)
	if mobile && d.mobileOpen {
		top += d.mobilePanelHeight()
	}
	d.drawCards(screen, top)
	d.drawHeader(screen, mobile)
}

// Layout returns the screen size in device pixels.
func (d *Dashboard) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return int(float64(outsideWidth) * d.scale), int(float64(outsideHeight) * d.scale)
}
