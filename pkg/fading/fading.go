// Package fading models an image that is shown blurred until its source has
// finished loading.
package fading

const (
	FitCover         = "cover"
	LayoutResponsive = "responsive"
)

const (
	baseClass    = "bg-gray-400 transition duration-1000"
	loadingClass = "blur-2xl scale-120"
	readyClass   = "blur-0 scale-100"
)

// State is the load state of one image.
type State int

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "loading"
}

// Options configures the underlying image element.
type Options struct {
	Src       string
	Alt       string
	Width     int
	Height    int
	ObjectFit string
	Layout    string
}

// Image owns the load state of a single rendered image. It is not safe for
// concurrent use; completion is delivered on the rendering loop.
type Image struct {
	opts  Options
	state State
}

// New copies opts and then forces ObjectFit and Layout to cover/responsive,
// whatever the caller passed for them.
func New(opts Options) *Image {
	img := &Image{opts: opts, state: Loading}
	img.opts.ObjectFit = FitCover
	img.opts.Layout = LayoutResponsive
	return img
}

func (i *Image) Options() Options {
	return i.opts
}

func (i *Image) State() State {
	return i.state
}

func (i *Image) Ready() bool {
	return i.state == Ready
}

// Complete records that the source finished loading. Only the first call
// changes state; it reports whether this call did.
func (i *Image) Complete() bool {
	if i.state == Ready {
		return false
	}
	i.state = Ready
	return true
}

// ClassName returns the visual treatment for the current state.
func (i *Image) ClassName() string {
	return ClassFor(i.state)
}

// ClassFor returns the class list used for s.
func ClassFor(s State) string {
	if s == Ready {
		return baseClass + " " + readyClass
	}
	return baseClass + " " + loadingClass
}
