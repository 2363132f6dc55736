package dashboard

import (
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/temidaradev/cryptotracker/internal/chart"
	"github.com/temidaradev/cryptotracker/internal/market"
	"github.com/temidaradev/cryptotracker/internal/series"
)

// drawCards draws one chart card per coin below the provided offset.
func (d *Dashboard) drawCards(screen *ebiten.Image, top float64) {
	bounds := screen.Bounds()
	width := float64(bounds.Dx())
	pad := d.px(pagePadding)
	cardH := d.px(cardHeight)
	gap := d.px(cardGap)

	coins := d.cfg.Source.Coins()

	content := float64(len(coins))*(cardH+gap) + pad
	d.maxScroll = content - (float64(bounds.Dy()) - top)
	if d.maxScroll < 0 {
		d.maxScroll = 0
	}
	d.clampScroll()

	if len(coins) == 0 {
		message := "No market data."
		tw, _ := text.Measure(message, d.faces.base, 0)
		d.drawText(screen, message, (width-tw)/2, top+pad*2, d.faces.base, colorMuted)
		return
	}

	now := d.cfg.Now()
	y := top + pad - d.scrollY
	for idx := range coins {
		if y+cardH >= top && y <= float64(bounds.Dy()) {
			d.drawCard(screen, &coins[idx], rectOf(pad, y, width-2*pad, cardH), now)
		}
		y += cardH + gap
	}
}

// drawCard draws the card of a single coin.
func (d *Dashboard) drawCard(screen *ebiten.Image, coin *market.CoinMarketEntry, rect image.Rectangle,
	now time.Time) {
	x, y := float64(rect.Min.X), float64(rect.Min.Y)
	w, h := float64(rect.Dx()), float64(rect.Dy())
	border := d.px(2)
	pad := d.px(cardPadding)

	fillRect(screen, x, y, w, h, colorCardBorder)
	fillRect(screen, x+border, y+border, w-2*border, h-2*border, colorWhite)

	// Name and symbol badge.
	d.drawText(screen, coin.Name, x+pad, y+pad, d.faces.name, colorText)
	_, nameH := text.Measure(coin.Name, d.faces.name, 0)

	symbol := strings.ToLower(coin.Symbol)
	sw, sh := text.Measure(symbol, d.faces.small, 0)
	badgeW, badgeH := sw+d.px(16), sh+d.px(8)
	badgeY := y + pad + nameH + d.px(6)
	fillRect(screen, x+pad, badgeY, badgeW, badgeH, colorBadge)
	d.drawText(screen, symbol, x+pad+d.px(8), badgeY+d.px(4), d.faces.small, colorBadgeText)

	if coin.CurrentPrice != 0 {
		price := fmt.Sprintf("$%s", chart.FormatTick(coin.CurrentPrice))
		d.drawText(screen, price, x+pad+badgeW+d.px(10), badgeY+d.px(4), d.faces.small, colorMuted)
	}

	// Logo.
	logoSz := d.px(logoSize)
	logoY := badgeY + badgeH + d.px(12)
	if img := d.logo(coin); img != nil {
		op := &ebiten.DrawImageOptions{}
		ib := img.Bounds()
		op.GeoM.Scale(logoSz/float64(ib.Dx()), logoSz/float64(ib.Dy()))
		op.GeoM.Translate(x+pad, logoY)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	// Chart, to the right of the logo.
	plotX := x + pad + logoSz + d.px(24) + d.px(axisWidth)
	plot := image.Rect(
		int(plotX),
		int(y+pad+d.px(8)),
		int(x+w-pad),
		int(y+h-pad-d.px(axisHeight)),
	)
	if plot.Dx() <= 0 || plot.Dy() <= 0 {
		return
	}

	d.drawChart(screen, series.LabelSeries(coin.Sparkline, now), plot)
}

// drawChart draws a labeled series as a line chart within the provided plot area.
func (d *Dashboard) drawChart(screen *ebiten.Image, points []series.LabeledPoint, plot image.Rectangle) {
	if len(points) == 0 {
		message := "No history data yet."
		dx, dy := textCentered(message, d.faces.base, float64(plot.Dx()), float64(plot.Dy()))
		d.drawText(screen, message, float64(plot.Min.X)+dx, float64(plot.Min.Y)+dy, d.faces.base, colorMuted)
		return
	}

	values := make([]float64, len(points))
	for idx := range points {
		values[idx] = points[idx].Value
	}

	lo, hi := chart.Bounds(values)
	projected := chart.Project(values, lo, hi, plot)
	left, right := float64(plot.Min.X), float64(plot.Max.X)
	top, bottom := float64(plot.Min.Y), float64(plot.Max.Y)

	// Horizontal grid and value axis.
	for _, v := range chart.ValueTicks(lo, hi, yTickCount) {
		ty := bottom - (v-lo)/(hi-lo)*float64(plot.Dy())
		d.drawDashed(screen, chart.Point{X: left, Y: ty}, chart.Point{X: right, Y: ty})

		label := chart.FormatTick(v)
		tw, th := text.Measure(label, d.faces.small, 0)
		d.drawText(screen, label, left-tw-d.px(8), ty-th/2, d.faces.small, colorAxis)
	}

	// Vertical grid and time axis.
	for _, idx := range chart.TickIndices(len(points), xTickInterval) {
		tx := projected[idx].X
		d.drawDashed(screen, chart.Point{X: tx, Y: top}, chart.Point{X: tx, Y: bottom})

		label := points[idx].Label
		tw, _ := text.Measure(label, d.faces.small, 0)
		d.drawText(screen, label, tx-tw/2, bottom+d.px(6), d.faces.small, colorAxis)
	}

	axis := float32(d.px(1))
	vector.StrokeLine(screen, float32(left), float32(top), float32(left), float32(bottom), axis, colorAxis, false)
	vector.StrokeLine(screen, float32(left), float32(bottom), float32(right), float32(bottom), axis, colorAxis, false)

	d.drawCurve(screen, projected)

	for _, p := range projected {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(d.px(3)), colorWhite, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(d.px(3)), float32(d.px(1)), colorLine, true)
	}

	d.drawTooltip(screen, points, projected, plot)
}

// drawDashed draws a dashed grid line.
func (d *Dashboard) drawDashed(screen *ebiten.Image, from, to chart.Point) {
	width := float32(d.px(1))
	for _, l := range chart.Dashes(from, to, d.px(dashLength), d.px(dashGap)) {
		vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y),
			width, colorGrid, false)
	}
}

// drawCurve strokes a monotone curve through the projected points.
func (d *Dashboard) drawCurve(screen *ebiten.Image, projected []chart.Point) {
	segments := chart.Monotone(projected)
	if len(segments) == 0 {
		return
	}

	path := &vector.Path{}
	path.MoveTo(float32(segments[0].From.X), float32(segments[0].From.Y))
	for _, s := range segments {
		path.CubicTo(float32(s.C1.X), float32(s.C1.Y), float32(s.C2.X), float32(s.C2.Y),
			float32(s.To.X), float32(s.To.Y))
	}

	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(d.px(1.5)),
		LineJoin: vector.LineJoinRound,
	})

	r, g, b, a := colorLine.RGBA()
	for idx := range vs {
		vs[idx].SrcX = 1
		vs[idx].SrcY = 1
		vs[idx].ColorR = float32(r) / 0xffff
		vs[idx].ColorG = float32(g) / 0xffff
		vs[idx].ColorB = float32(b) / 0xffff
		vs[idx].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, d.solidColorImage, op)
}

// drawTooltip draws the value under the cursor when it hovers the plot.
func (d *Dashboard) drawTooltip(screen *ebiten.Image, points []series.LabeledPoint, projected []chart.Point,
	plot image.Rectangle) {
	cx, cy := ebiten.CursorPosition()
	if !image.Pt(cx, cy).In(plot) {
		return
	}

	idx := chart.Nearest(projected, float64(cx))
	if idx < 0 {
		return
	}

	p := projected[idx]
	vector.StrokeLine(screen, float32(p.X), float32(plot.Min.Y), float32(p.X), float32(plot.Max.Y),
		float32(d.px(1)), colorGrid, false)
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(d.px(5)), colorLine, true)

	label := points[idx].Label
	value := "value : " + chart.FormatTick(points[idx].Value)
	lw, lh := text.Measure(label, d.faces.base, 0)
	vw, vh := text.Measure(value, d.faces.base, 0)

	pad := d.px(10)
	boxW := max(lw, vw) + 2*pad
	boxH := lh + vh + 2*pad + d.px(4)

	bx := p.X + d.px(12)
	if bx+boxW > float64(plot.Max.X) {
		bx = p.X - d.px(12) - boxW
	}
	by := float64(cy) - boxH/2
	by = min(max(by, float64(plot.Min.Y)), float64(plot.Max.Y)-boxH)

	fillRect(screen, bx-d.px(1), by-d.px(1), boxW+d.px(2), boxH+d.px(2), colorGrid)
	fillRect(screen, bx, by, boxW, boxH, colorWhite)
	d.drawText(screen, label, bx+pad, by+pad, d.faces.base, colorText)
	d.drawText(screen, value, bx+pad, by+pad+lh+d.px(4), d.faces.base, colorLine)
}
