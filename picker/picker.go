// Package picker implements the interactive file-selection dialog as a
// full-screen terminal list browser.
package picker

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type entry struct {
	name  string
	isDir bool
}

// Picker browses the filesystem and lets the user choose one file. The
// extension filter is advisory: it narrows the default listing but can be
// toggled off, and directories are always shown.
type Picker struct {
	screen     tcell.Screen
	dir        string
	extensions []string
	showAll    bool
	entries    []entry
	selected   int
	offset     int
	status     string
}

// New creates a Picker on the real terminal, starting in startDir.
func New(startDir string, extensions []string) (*Picker, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, startDir, extensions), nil
}

// NewWithScreen creates a Picker on the given screen. Tests pass a
// tcell.SimulationScreen here.
func NewWithScreen(screen tcell.Screen, startDir string, extensions []string) *Picker {
	if startDir == "" {
		startDir = "."
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}
	return &Picker{screen: screen, dir: startDir, extensions: extensions}
}

// Run drives the dialog until the user selects a file or cancels.
// ok is false on cancellation; that is a normal outcome, not an error.
func (p *Picker) Run() (path string, ok bool, err error) {
	if err := p.screen.Init(); err != nil {
		return "", false, err
	}
	defer p.screen.Fini()

	p.loadDir()

	for {
		p.draw()

		switch ev := p.screen.PollEvent().(type) {
		case *tcell.EventResize:
			p.screen.Sync()

		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", false, nil
			case tcell.KeyUp:
				p.move(-1)
			case tcell.KeyDown:
				p.move(1)
			case tcell.KeyPgUp:
				p.move(-p.pageSize())
			case tcell.KeyPgDn:
				p.move(p.pageSize())
			case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
				p.enterDir(filepath.Dir(p.dir))
			case tcell.KeyEnter:
				if path, done := p.activate(); done {
					return path, true, nil
				}
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return "", false, nil
				case 'a':
					p.showAll = !p.showAll
					p.loadDir()
				case 'k':
					p.move(-1)
				case 'j':
					p.move(1)
				}
			}
		}
	}
}

// activate descends into the selected directory, or resolves the selected
// file. done is true only when a file was chosen.
func (p *Picker) activate() (string, bool) {
	if p.selected >= len(p.entries) {
		return "", false
	}

	e := p.entries[p.selected]
	target := filepath.Join(p.dir, e.name)
	if e.name == ".." {
		target = filepath.Dir(p.dir)
	}

	if e.isDir {
		p.enterDir(target)
		return "", false
	}
	return target, true
}

func (p *Picker) enterDir(dir string) {
	if dir == p.dir {
		return
	}
	p.dir = dir
	p.selected = 0
	p.offset = 0
	p.loadDir()
}

// loadDir refreshes the listing: directories first, then files matching the
// advisory extension filter, each group sorted by name. Dot-files are
// hidden; a ".." entry leads back up unless already at the root.
func (p *Picker) loadDir() {
	p.entries = p.entries[:0]
	p.status = ""

	if filepath.Dir(p.dir) != p.dir {
		p.entries = append(p.entries, entry{name: "..", isDir: true})
	}

	items, err := os.ReadDir(p.dir)
	if err != nil {
		p.status = err.Error()
		return
	}

	var dirs, files []entry
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if item.IsDir() {
			dirs = append(dirs, entry{name: name, isDir: true})
			continue
		}
		if p.showAll || p.matchesFilter(name) {
			files = append(files, entry{name: name})
		}
	}

	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	p.entries = append(p.entries, dirs...)
	p.entries = append(p.entries, files...)

	if p.selected >= len(p.entries) {
		p.selected = 0
	}
}

func (p *Picker) matchesFilter(name string) bool {
	if len(p.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range p.extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func (p *Picker) move(delta int) {
	p.selected += delta
	if p.selected < 0 {
		p.selected = 0
	}
	if p.selected >= len(p.entries) {
		p.selected = len(p.entries) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}

	if p.selected < p.offset {
		p.offset = p.selected
	}
	if p.selected >= p.offset+p.pageSize() {
		p.offset = p.selected - p.pageSize() + 1
	}
}

func (p *Picker) pageSize() int {
	_, h := p.screen.Size()
	if h <= 3 {
		return 1
	}
	return h - 3
}

func (p *Picker) draw() {
	p.screen.Clear()
	w, h := p.screen.Size()

	header := "Select file to analyze: " + p.dir
	drawText(p.screen, 0, 0, w, tcell.StyleDefault.Bold(true), header)

	rows := p.pageSize()
	for i := 0; i < rows && p.offset+i < len(p.entries); i++ {
		e := p.entries[p.offset+i]
		label := "  " + e.name
		if e.isDir {
			label += string(filepath.Separator)
		}

		style := tcell.StyleDefault
		if p.offset+i == p.selected {
			style = style.Reverse(true)
		}
		drawText(p.screen, 0, i+1, w, style, label)
	}

	footer := "enter: select   backspace: up   a: all files   esc: cancel"
	if p.status != "" {
		footer = p.status
	}
	drawText(p.screen, 0, h-1, w, tcell.StyleDefault.Foreground(tcell.ColorYellow), footer)

	p.screen.Show()
}

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		if col >= x+maxWidth {
			break
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}
}
