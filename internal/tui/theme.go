package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

var uiTheme = struct {
	background tcell.Color
	surface    tcell.Color
	stripe     tcell.Color
	headerBg   tcell.Color
	text       tcell.Color
	subtleText tcell.Color
	accent     tcell.Color
	warm       tcell.Color
	danger     tcell.Color
	selection  tcell.Color
	inputBg    tcell.Color
}{
	background: tcell.NewHexColor(0x0f0f14),
	surface:    tcell.NewHexColor(0x11131a),
	stripe:     tcell.NewHexColor(0x161924),
	headerBg:   tcell.NewHexColor(0x181c26),
	text:       tcell.NewHexColor(0xe7e7eb),
	subtleText: tcell.NewHexColor(0x9aa0b2),
	accent:     tcell.NewHexColor(0x2fb4ad),
	warm:       tcell.NewHexColor(0xffb347),
	danger:     tcell.NewHexColor(0xff6b6b),
	selection:  tcell.NewHexColor(0x1f6f78),
	inputBg:    tcell.NewHexColor(0x151824),
}

func applyTableTheme(t *tview.Table) {
	t.SetBackgroundColor(uiTheme.surface)
	t.SetBorderColor(uiTheme.accent)
	t.SetTitleColor(uiTheme.accent)
	t.SetSelectedStyle(tcell.StyleDefault.Background(uiTheme.selection).Foreground(uiTheme.text))
}

func applyFormTheme(f *tview.Form) {
	f.SetBackgroundColor(uiTheme.surface)
	f.SetBorderColor(uiTheme.accent)
	f.SetTitleColor(uiTheme.accent)
	f.SetFieldBackgroundColor(uiTheme.inputBg)
	f.SetFieldTextColor(uiTheme.text)
	f.SetLabelColor(uiTheme.subtleText)
	f.SetButtonBackgroundColor(uiTheme.accent)
	f.SetButtonTextColor(uiTheme.background)
}

func applyTextTheme(v *tview.TextView) {
	v.SetBackgroundColor(uiTheme.surface)
	v.SetBorderColor(uiTheme.accent)
	v.SetTitleColor(uiTheme.accent)
	v.SetTextColor(uiTheme.text)
}

func stripeColor(row int) tcell.Color {
	if row%2 == 1 {
		return uiTheme.stripe
	}
	return uiTheme.surface
}

func bodyCell(text string, row int) *tview.TableCell {
	return tview.NewTableCell(text).
		SetTextColor(uiTheme.text).
		SetBackgroundColor(stripeColor(row))
}

func header(text string) *tview.TableCell {
	return tview.NewTableCell(text).
		SetSelectable(false).
		SetAttributes(tcell.AttrBold).
		SetTextColor(uiTheme.accent).
		SetBackgroundColor(uiTheme.headerBg)
}

// centered wraps p in a fixed-size box in the middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(p, width, 0, true).
			AddItem(nil, 0, 1, false), height, 0, true).
		AddItem(nil, 0, 1, false)
}
