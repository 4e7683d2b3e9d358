package game

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var layouts = map[string]string{
	"test": `
%%%%%
% . %
%.G.%
% . %
%. .%
%   %
%  .%
%   %
%P .%
%%%%%
`,
	"minimax": `
%%%%%%%%%
%.P    G%
% %.%G%%%
%G    %%%
%%%%%%%%%
`,
	"trapped": `
%%%%%%%%
%   P G%
%G%%%%%%
%....  %
%%%%%%%%
`,
	"small": `
%%%%%%%%%%%%%%%%%%%%
%......%G  G%......%
%.%%...%%  %%...%%.%
%.%o.%........%.o%.%
%.%%.%.%%%%%%.%.%%.%
%........P.........%
%%%%%%%%%%%%%%%%%%%%
`,
	"open": `
%%%%%%%%%
%P  .  G%
% . . . %
%   o   %
%%%%%%%%%
`,
}

// Layout returns the initial state of a built-in layout.
func Layout(name string) (*GridState, error) {
	text, ok := layouts[name]
	if !ok {
		return nil, errors.Errorf("unknown layout %q (available: %v)", name, LayoutNames())
	}
	state, err := ParseLayout(text)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse layout %q", name)
	}
	return state, nil
}

// LayoutNames lists the built-in layouts in sorted order.
func LayoutNames() []string {
	names := maps.Keys(layouts)
	slices.Sort(names)
	return names
}
