package screen

import (
	"errors"
	"fmt"
)

// ErrNoRoute is returned for unknown routes and transitions the graph does not allow.
var ErrNoRoute = errors.New("no such route")

// Route identifies a screen.
type Route string

const (
	RouteMainMenu Route = "mainMenu"
	RouteMain     Route = "mainScreen"
	RouteAbout    Route = "aboutScreen"
)

// Screen is the static content of one destination.
type Screen struct {
	Route       Route   `json:"route"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Links       []Route `json:"links"`
}

// Graph is the set of screens and the forward edges between them.
// Moving back along an edge is always allowed.
type Graph struct {
	Start   Route
	screens []Screen
	index   map[Route]int
}

// NewGraph builds a graph. Links must point at screens in the same graph.
func NewGraph(start Route, screens ...Screen) (*Graph, error) {
	g := &Graph{Start: start, screens: screens, index: make(map[Route]int, len(screens))}
	for i, s := range screens {
		if _, dup := g.index[s.Route]; dup {
			return nil, fmt.Errorf("duplicate screen %q", s.Route)
		}
		g.index[s.Route] = i
	}
	if _, ok := g.index[start]; !ok {
		return nil, fmt.Errorf("start screen %q: %w", start, ErrNoRoute)
	}
	for _, s := range screens {
		for _, link := range s.Links {
			if _, ok := g.index[link]; !ok {
				return nil, fmt.Errorf("screen %q links to %q: %w", s.Route, link, ErrNoRoute)
			}
		}
	}
	return g, nil
}

// DefaultGraph is the laundry app: a menu leading to the calculator and the about page.
func DefaultGraph() *Graph {
	g, err := NewGraph(RouteMainMenu,
		Screen{
			Route:       RouteMainMenu,
			Title:       "Laundry",
			Description: "Hitung biaya laundry kiloan dan bagikan ringkasannya.",
			Links:       []Route{RouteMain, RouteAbout},
		},
		Screen{
			Route:       RouteMain,
			Title:       "Kalkulator Laundry",
			Description: "Masukkan nama, alamat, dan berat cucian. Rp5.000 per kg, diskon 10% mulai 5 kg.",
			Links:       []Route{RouteAbout},
		},
		Screen{
			Route:       RouteAbout,
			Title:       "Tentang Aplikasi",
			Description: "Aplikasi penghitung biaya laundry.",
		},
	)
	if err != nil {
		panic(err)
	}
	return g
}

// Screens returns every screen in declaration order.
func (g *Graph) Screens() []Screen {
	out := make([]Screen, len(g.screens))
	copy(out, g.screens)
	return out
}

// Lookup finds a screen by route.
func (g *Graph) Lookup(route Route) (Screen, error) {
	i, ok := g.index[route]
	if !ok {
		return Screen{}, fmt.Errorf("%w: %q", ErrNoRoute, route)
	}
	return g.screens[i], nil
}

// Navigate resolves a transition and returns the destination screen.
func (g *Graph) Navigate(from, to Route) (Screen, error) {
	src, err := g.Lookup(from)
	if err != nil {
		return Screen{}, err
	}
	dst, err := g.Lookup(to)
	if err != nil {
		return Screen{}, err
	}
	if linked(src, to) || linked(dst, from) {
		return dst, nil
	}
	return Screen{}, fmt.Errorf("%w: %s -> %s", ErrNoRoute, from, to)
}

func linked(s Screen, to Route) bool {
	for _, link := range s.Links {
		if link == to {
			return true
		}
	}
	return false
}
