// Package config loads the TOML-encoded parameters of a DKG test harness:
// how many dealers, how many nodes, and the secret-sharing threshold. It
// carries no secret key material, only the shape of a run, following the
// TOML()/FromTOML() pattern drand/drand's key package uses for its group
// and private-key files (key/keys.go, key/group.go).
package config

import (
	"bytes"
	"errors"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// HarnessConfig describes one DKG run: f+1 dealers, n nodes, threshold t.
type HarnessConfig struct {
	Dealers   int
	Nodes     int
	Threshold int
}

// HarnessTOML is the TOML-able mirror of HarnessConfig.
type HarnessTOML struct {
	Dealers   int
	Nodes     int
	Threshold int
}

// TOML returns a struct marshallable by a TOML encoder.
func (c *HarnessConfig) TOML() interface{} {
	return &HarnessTOML{Dealers: c.Dealers, Nodes: c.Nodes, Threshold: c.Threshold}
}

// FromTOML populates c from a decoded HarnessTOML.
func (c *HarnessConfig) FromTOML(i interface{}) error {
	ht, ok := i.(*HarnessTOML)
	if !ok {
		return errors.New("config: can't decode toml from non-HarnessTOML struct")
	}
	c.Dealers = ht.Dealers
	c.Nodes = ht.Nodes
	c.Threshold = ht.Threshold
	return c.Validate()
}

// Validate checks the harness shape is internally consistent: dealers and
// nodes must be positive, and the threshold must leave room for at least
// one honest reconstruction quorum. All violations are reported together.
func (c *HarnessConfig) Validate() error {
	var errs *multierror.Error
	if c.Dealers <= 0 {
		errs = multierror.Append(errs, errors.New("config: dealers must be positive"))
	}
	if c.Nodes <= 0 {
		errs = multierror.Append(errs, errors.New("config: nodes must be positive"))
	}
	if c.Threshold < 0 || c.Threshold >= c.Nodes {
		errs = multierror.Append(errs, errors.New("config: threshold must be in [0, nodes)"))
	}
	return errs.ErrorOrNil()
}

// ConfirmThreshold returns the 2f+1 confirmation count a node requires to
// accept a dealer, where f+1 is the dealer count.
func (c *HarnessConfig) ConfirmThreshold() int {
	f := c.Dealers - 1
	return 2*f + 1
}

// Load decodes a HarnessConfig from TOML read off r.
func Load(r io.Reader) (*HarnessConfig, error) {
	var ht HarnessTOML
	if _, err := toml.NewDecoder(r).Decode(&ht); err != nil {
		return nil, err
	}
	c := &HarnessConfig{}
	if err := c.FromTOML(&ht); err != nil {
		return nil, err
	}
	return c, nil
}

// Bytes encodes c as TOML.
func (c *HarnessConfig) Bytes() ([]byte, error) {
	var b bytes.Buffer
	if err := toml.NewEncoder(&b).Encode(c.TOML()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
