package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"sort"
	"strings"
)

type ValidationError struct {
	Problems []string
}

func (v *ValidationError) Add(format string, args ...any) {
	v.Problems = append(v.Problems, fmt.Sprintf(format, args...))
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%d validation error(s)", len(v.Problems))
}

func (c *Config) Validate() error {
	v := &ValidationError{}

	if c.ConfigVersion != 1 {
		v.Add("configVersion must be 1")
	}

	if c.Server.Listen != "" {
		if err := validateListen(c.Server.Listen); err != nil {
			v.Add("server.listen invalid: %v", err)
		}
	}

	if c.Upstream.URL != "" {
		if err := validateURL(c.Upstream.URL); err != nil {
			v.Add("upstream.url invalid: %v", err)
		}
	}

	if code := c.Normalize.RedirectCode; code != 0 && (code < 300 || code > 399) {
		v.Add("normalize.redirectCode must be a 3xx status code")
	}

	if c.Metrics.Enabled {
		if err := validateListen(c.Metrics.Listen); err != nil {
			v.Add("metrics.listen invalid: %v", err)
		}
	}

	routeNames := map[string]struct{}{}
	for i, route := range c.Routes {
		if route.Name == "" {
			v.Add("routes[%d].name is required", i)
		} else if _, exists := routeNames[route.Name]; exists {
			v.Add("routes[%d].name %q is duplicated", i, route.Name)
		} else {
			routeNames[route.Name] = struct{}{}
		}

		if route.Path == "" {
			v.Add("routes[%d].path is required", i)
		}
	}

	if len(v.Problems) > 0 {
		sort.Strings(v.Problems)
		return v
	}
	return nil
}

func validateListen(addr string) error {
	if strings.TrimSpace(addr) == "" {
		return errors.New("address is required")
	}
	if _, err := net.ResolveTCPAddr("tcp", addr); err != nil {
		return err
	}
	return nil
}

func validateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("must include scheme and host")
	}
	return nil
}
