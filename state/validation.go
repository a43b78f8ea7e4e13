package state

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strconv"
)

// names must survive a round trip through the line format, so separators and whitespace are excluded
var namePattern, _ = regexp.Compile(`^[^\s!;:]+$`)

func PathValidator(s string) error {
	_, err := os.Stat(path.Dir(s))
	if err != nil {
		return err
	}
	_, err = filepath.Abs(s)
	return err
}

func NameValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%w: %q must match pattern %s", ErrInvalidName, s, namePattern.String())
	}
	if len(s) > 100 {
		return fmt.Errorf("%w: len(\"%s\") = %d > 100 is too long", ErrInvalidName, s, len(s))
	}
	return nil
}

func AddressValidator(s string) error {
	if !namePattern.MatchString(s) {
		return fmt.Errorf("%w: network address %q must match pattern %s", ErrInvalidName, s, namePattern.String())
	}
	return nil
}

// ParseDistance accepts a non-negative base 10 integer
func ParseDistance(s string) (Distance, error) {
	d, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, s)
	}
	return Distance(d), nil
}

func TopologyValidator(cfg *TopologyCfg) error {
	seen := make(map[NodeId]struct{})
	for _, router := range cfg.Routers {
		if err := NameValidator(string(router.Id)); err != nil {
			return fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if _, ok := seen[router.Id]; ok {
			return fmt.Errorf("%w: %w: %s", ErrMalformed, ErrNameConflict, router.Id)
		}
		seen[router.Id] = struct{}{}
		for _, neigh := range router.Neighbours {
			if err := NameValidator(string(neigh)); err != nil {
				return fmt.Errorf("%w: router %s: %w", ErrMalformed, router.Id, err)
			}
		}
		for _, network := range router.Networks {
			if err := AddressValidator(network.Address); err != nil {
				return fmt.Errorf("%w: router %s: %w", ErrMalformed, router.Id, err)
			}
		}
	}
	return nil
}
