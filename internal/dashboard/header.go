package dashboard

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const title = "Crypto Tracker"

func rectOf(x, y, w, h float64) image.Rectangle {
	return image.Rect(int(x), int(y), int(x+w), int(y+h))
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// hovered reports whether the cursor is within the provided rectangle.
func hovered(rect image.Rectangle) bool {
	return image.Pt(ebiten.CursorPosition()).In(rect)
}

// textCentered returns the offsets that center text in a box of the provided size.
func textCentered(s string, face text.Face, w, h float64) (float64, float64) {
	tw, th := text.Measure(s, face, 0)
	return (w - tw) / 2, (h - th) / 2
}

// mobilePanelHeight returns the height of the open mobile disclosure panel.
func (d *Dashboard) mobilePanelHeight() float64 {
	rows := len(d.navigation) + len(d.userNavigation)
	return d.px(float64(rows)*40 + 24 + 72)
}

// drawHeader draws the navigation header, its menus and the page title.
func (d *Dashboard) drawHeader(screen *ebiten.Image, mobile bool) {
	width := float64(screen.Bounds().Dx())
	pad := d.px(pagePadding)
	height := d.px(headerHeight)

	bandHeight := d.px(headerHeight + titleHeight)
	if mobile && d.mobileOpen {
		bandHeight += d.mobilePanelHeight()
	}
	fillRect(screen, 0, 0, width, bandHeight, colorHeader)
	fillRect(screen, pad, height-d.px(1), width-2*pad, d.px(1), colorHeaderBorder)

	// Brand mark.
	mark := d.px(32)
	markY := (height - mark) / 2
	fillRect(screen, pad, markY, mark, mark, colorBrand)
	vector.DrawFilledCircle(screen, float32(pad+mark/2), float32(markY+mark/2), float32(mark/4), colorHeader, true)

	if mobile {
		d.drawMenuButton(screen, width-pad-d.px(iconButton+8), (height-d.px(iconButton+8))/2)
		if d.mobileOpen {
			d.drawMobilePanel(screen, height)
		}
	} else {
		d.drawNavigation(screen, pad+mark+d.px(40), height)

		avatarX := width - pad - d.px(iconButton)
		bellX := avatarX - d.px(12+iconButton)
		btnY := (height - d.px(iconButton)) / 2
		d.drawBell(screen, bellX, btnY)
		d.drawAvatar(screen, avatarX, btnY, d.px(iconButton), func() {
			d.userMenuOpen = !d.userMenuOpen
		})
	}

	titleY := height + d.px(30)
	if mobile && d.mobileOpen {
		titleY += d.mobilePanelHeight()
	}
	d.drawText(screen, title, pad, titleY, d.faces.title, colorWhite)

	if !mobile && d.userMenuOpen {
		d.drawUserMenu(screen, width-pad-d.px(menuWidth), height-d.px(4))
	}
}

// drawNavigation draws the inline navigation items.
func (d *Dashboard) drawNavigation(screen *ebiten.Image, x, height float64) {
	itemH := d.px(36)
	y := (height - itemH) / 2

	for idx := range d.navigation {
		item := d.navigation[idx]
		tw, _ := text.Measure(item.Name, d.faces.base, 0)
		w := tw + 2*d.px(navItemPad)
		rect := rectOf(x, y, w, itemH)

		clr := colorNavText
		switch {
		case item.Current:
			fillRect(screen, x, y, w, itemH, colorHeaderActive)
			clr = colorWhite
		case hovered(rect):
			fillRect(screen, x, y, w, itemH, colorHeaderHover)
			clr = colorWhite
		}

		dx, dy := textCentered(item.Name, d.faces.base, w, itemH)
		d.drawText(screen, item.Name, x+dx, y+dy, d.faces.base, clr)
		d.onClick(rect, func() { d.selectNav(item.Name) })

		x += w + d.px(16)
	}
}

// drawBell draws the notifications button.
func (d *Dashboard) drawBell(screen *ebiten.Image, x, y float64) {
	size := d.px(iconButton)
	rect := rectOf(x, y, size, size)

	clr := colorIcon
	if hovered(rect) {
		clr = colorWhite
	}

	cx := x + size/2
	r := size / 4
	vector.DrawFilledCircle(screen, float32(cx), float32(y+size*0.42), float32(r), clr, true)
	fillRect(screen, cx-r, y+size*0.42, 2*r, size*0.2, clr)
	fillRect(screen, cx-r*1.4, y+size*0.62, 2.8*r, d.px(2), clr)
	vector.DrawFilledCircle(screen, float32(cx), float32(y+size*0.72), float32(d.px(2.5)), clr, true)

	d.onClick(rect, func() {
		d.cfg.Logger.Info().Msg("notifications viewed")
	})
}

// drawAvatar draws the user avatar button.
func (d *Dashboard) drawAvatar(screen *ebiten.Image, x, y, size float64, action func()) {
	cx, cy := float32(x+size/2), float32(y+size/2)
	vector.DrawFilledCircle(screen, cx, cy, float32(size/2), colorBrand, true)

	initials := d.user.Initials()
	dx, dy := textCentered(initials, d.faces.small, size, size)
	d.drawText(screen, initials, x+dx, y+dy, d.faces.small, colorWhite)

	if action != nil {
		d.onClick(rectOf(x, y, size, size), action)
	}
}

// drawUserMenu draws the open user menu dropdown.
func (d *Dashboard) drawUserMenu(screen *ebiten.Image, x, y float64) {
	w := d.px(menuWidth)
	itemH := d.px(menuItemH)
	pad := d.px(4)
	h := float64(len(d.userNavigation))*itemH + 2*pad

	fillRect(screen, x-d.px(1), y-d.px(1), w+d.px(2), h+d.px(2), colorMenuBorder)
	fillRect(screen, x, y, w, h, colorWhite)

	// Clicks on the menu background are swallowed so the menu stays open.
	d.onClick(rectOf(x, y, w, h), func() {})

	for idx, item := range d.userNavigation {
		iy := y + pad + float64(idx)*itemH
		rect := rectOf(x, iy, w, itemH)
		if hovered(rect) {
			fillRect(screen, x, iy, w, itemH, colorMenuHover)
		}

		_, dy := textCentered(item.Name, d.faces.base, w, itemH)
		d.drawText(screen, item.Name, x+d.px(16), iy+dy, d.faces.base, colorMenuText)

		name := item.Name
		d.onClick(rect, func() { d.selectUserNav(name) })
	}
}

// drawMenuButton draws the mobile menu toggle.
func (d *Dashboard) drawMenuButton(screen *ebiten.Image, x, y float64) {
	size := d.px(iconButton + 8)
	rect := rectOf(x, y, size, size)

	clr := colorIcon
	if hovered(rect) {
		fillRect(screen, x, y, size, size, colorHeaderHover)
		clr = colorWhite
	}

	stroke := float32(d.px(2))
	inset := size * 0.25
	x0, x1 := float32(x+inset), float32(x+size-inset)
	if d.mobileOpen {
		y0, y1 := float32(y+inset), float32(y+size-inset)
		vector.StrokeLine(screen, x0, y0, x1, y1, stroke, clr, true)
		vector.StrokeLine(screen, x0, y1, x1, y0, stroke, clr, true)
	} else {
		for _, f := range []float64{0.3, 0.5, 0.7} {
			ly := float32(y + size*f)
			vector.StrokeLine(screen, x0, ly, x1, ly, stroke, clr, true)
		}
	}

	d.onClick(rect, func() { d.mobileOpen = !d.mobileOpen })
}

// drawMobilePanel draws the open mobile disclosure panel below the header.
func (d *Dashboard) drawMobilePanel(screen *ebiten.Image, y float64) {
	width := float64(screen.Bounds().Dx())
	pad := d.px(8)
	rowH := d.px(40)

	y += d.px(12)
	for idx := range d.navigation {
		item := d.navigation[idx]
		rect := rectOf(pad, y, width-2*pad, rowH)

		clr := colorNavText
		switch {
		case item.Current:
			fillRect(screen, pad, y, width-2*pad, rowH, colorHeaderActive)
			clr = colorWhite
		case hovered(rect):
			fillRect(screen, pad, y, width-2*pad, rowH, colorHeaderHover)
			clr = colorWhite
		}

		_, dy := textCentered(item.Name, d.faces.base, 0, rowH)
		d.drawText(screen, item.Name, pad+d.px(12), y+dy, d.faces.base, clr)
		d.onClick(rect, func() { d.selectNav(item.Name) })

		y += rowH
	}

	// User block.
	y += d.px(12)
	fillRect(screen, 0, y, width, d.px(1), colorHeaderBorder)
	y += d.px(16)

	avatar := d.px(40)
	d.drawAvatar(screen, d.px(20), y, avatar, nil)
	d.drawText(screen, d.user.Name, d.px(20)+avatar+d.px(12), y+d.px(2), d.faces.base, colorWhite)
	d.drawText(screen, d.user.Email, d.px(20)+avatar+d.px(12), y+d.px(22), d.faces.small, colorIcon)
	d.drawBell(screen, width-d.px(20+iconButton), y+(avatar-d.px(iconButton))/2)
	y += avatar + d.px(8)

	for _, item := range d.userNavigation {
		rect := rectOf(pad, y, width-2*pad, rowH)

		clr := colorIcon
		if hovered(rect) {
			fillRect(screen, pad, y, width-2*pad, rowH, colorHeaderHover)
			clr = colorWhite
		}

		_, dy := textCentered(item.Name, d.faces.base, 0, rowH)
		d.drawText(screen, item.Name, pad+d.px(12), y+dy, d.faces.base, clr)

		name := item.Name
		d.onClick(rect, func() { d.selectUserNav(name) })

		y += rowH
	}
}
