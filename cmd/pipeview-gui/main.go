// pipeview-gui is the attribute editor frontend: it lists the primitives of
// an assembled network, lets the user edit each primitive's property bag,
// rebuilds the edited primitive in place and exports the result as GeoJSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pipeview/internal/app"
	"pipeview/pkg/network"
)

type App struct {
	window    fyne.Window
	container *network.Container
	list      *widget.List
	editor    *fyne.Container
	selected  int
}

func main() {
	a := fyneapp.New()
	w := a.NewWindow("pipeview - Attribute Editor")

	appInstance := &App{
		window:   w,
		selected: -1,
	}

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(1000, 700))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to pipeview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Open a GeoJSON network file to inspect and edit attributes")

	openButton := widget.NewButton("Open GeoJSON File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	doc, err := app.LoadDocument(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load network: %w", err), a.window)
		return
	}

	cont, _ := network.Assemble(doc)
	if cont == nil {
		dialog.ShowInformation("No data", "The document contains no displayable network features.", a.window)
		return
	}

	a.container = cont
	a.selected = -1
	a.setupMainUI()
}

func (a *App) setupMainUI() {
	a.list = widget.NewList(
		func() int { return a.container.Len() },
		func() fyne.CanvasObject { return widget.NewLabel("primitive") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(describePrimitive(a.container.Primitives[id]))
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		a.selected = id
		a.showEditor(a.container.Primitives[id])
	}

	a.editor = container.NewVBox(widget.NewLabel("Select a primitive to edit its attributes"))

	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})
	exportButton := widget.NewButton("Export GeoJSON", func() {
		a.showExportDialog()
	})

	left := container.NewBorder(nil, container.NewVBox(openButton, exportButton), nil, nil, a.list)

	split := container.NewHSplit(left, container.NewVScroll(a.editor))
	split.SetOffset(0.35)

	a.window.SetContent(split)
}

func describePrimitive(p *network.Primitive) string {
	label := p.Layer
	if label == "" {
		label = "(unnamed)"
	}
	switch p.Shape.(type) {
	case *network.Tube:
		return fmt.Sprintf("pipe  %s", label)
	case *network.ArcStroke:
		return fmt.Sprintf("arc  %s", label)
	case *network.Disk:
		return fmt.Sprintf("circle  %s", label)
	}
	return label
}

// showEditor rebuilds the right-hand panel with one entry per attribute
func (a *App) showEditor(p *network.Primitive) {
	keys := make([]string, 0, len(p.Properties))
	for k := range p.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make(map[string]*widget.Entry, len(keys))
	form := container.NewVBox(widget.NewLabel(describePrimitive(p)))
	for _, key := range keys {
		entry := widget.NewEntry()
		entry.SetText(fmt.Sprintf("%v", p.Properties[key]))
		entries[key] = entry
		form.Add(container.NewBorder(nil, nil, widget.NewLabel(key), nil, entry))
	}

	newKeyEntry := widget.NewEntry()
	newKeyEntry.SetPlaceHolder("new attribute")
	newValueEntry := widget.NewEntry()
	newValueEntry.SetPlaceHolder("value")

	applyButton := widget.NewButton("Apply", func() {
		for key, entry := range entries {
			p.Properties[key] = parseValue(entry.Text)
		}
		if newKeyEntry.Text != "" {
			p.Properties[newKeyEntry.Text] = parseValue(newValueEntry.Text)
		}
		network.Rebuild(p)
		a.list.Refresh()
		a.showEditor(p)
	})
	applyButton.Importance = widget.HighImportance

	form.Add(widget.NewSeparator())
	form.Add(container.NewBorder(nil, nil, newKeyEntry, nil, newValueEntry))
	form.Add(applyButton)

	a.editor.Objects = []fyne.CanvasObject{form}
	a.editor.Refresh()
}

// parseValue stores numeric-looking input as a number so edited values decode
// the same way they would from a fresh GeoJSON file
func parseValue(text string) interface{} {
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f
	}
	return text
}

func (a *App) showExportDialog() {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		raw, err := json.MarshalIndent(network.ExportGeoJSON(a.container), "", "  ")
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if _, err := writer.Write(raw); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
}
