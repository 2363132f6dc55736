package dashboard

import "image/color"

var (
	colorHeader       = color.RGBA{31, 41, 55, 255}
	colorHeaderActive = color.RGBA{17, 24, 39, 255}
	colorHeaderHover  = color.RGBA{55, 65, 81, 255}
	colorHeaderBorder = color.RGBA{55, 65, 81, 255}
	colorIcon         = color.RGBA{156, 163, 175, 255}
	colorNavText      = color.RGBA{209, 213, 219, 255}
	colorWhite        = color.RGBA{255, 255, 255, 255}
	colorPage         = color.RGBA{243, 244, 246, 255}
	colorMenuText     = color.RGBA{55, 65, 81, 255}
	colorMenuHover    = color.RGBA{243, 244, 246, 255}
	colorMenuBorder   = color.RGBA{229, 231, 235, 255}
	colorBrand        = color.RGBA{99, 102, 241, 255}
	colorCardBorder   = color.RGBA{234, 179, 8, 255}
	colorBadge        = color.RGBA{30, 41, 59, 255}
	colorBadgeText    = color.RGBA{254, 226, 226, 255}
	colorText         = color.RGBA{17, 24, 39, 255}
	colorMuted        = color.RGBA{107, 114, 128, 255}
	colorGrid         = color.RGBA{204, 204, 204, 255}
	colorLine         = color.RGBA{136, 132, 216, 255}
	colorAxis         = color.RGBA{102, 102, 102, 255}
)

// Sizes in logical pixels, scaled by the device scale factor when drawn.
const (
	baseFontSize  = 14
	smallFontSize = 12
	titleFontSize = 30
	nameFontSize  = 24

	headerHeight  = 64
	titleHeight   = 96
	pagePadding   = 24
	cardHeight    = 300
	cardPadding   = 20
	cardGap       = 16
	logoSize      = 96
	axisWidth     = 64
	axisHeight    = 24
	menuWidth     = 192
	menuItemH     = 36
	navItemPad    = 12
	iconButton    = 32
	mobileBreak   = 768
	scrollStep    = 48
	xTickInterval = 7
	yTickCount    = 5
	dashLength    = 5
	dashGap       = 5
)
