// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/mcfscore/mcfscore/core"
	"github.com/mcfscore/mcfscore/flow"
)

// Reference table file names inside an input directory.
const (
	RequestsFile       = "reqs.csv"
	DistanceMatrixFile = "distance_matrix.csv"
	OfficesFile        = "offices.csv"
)

// Reference is the loaded input directory: the network to resolve legs and
// transfers against and the expected request volumes.
type Reference struct {
	Network  *core.Network
	Requests map[flow.RequestKey]float64

	// HasOffices is false when offices.csv was absent and no transfer
	// accounting applies.
	HasOffices bool
}

// LoadReference reads the reference tables from dir.
//
// reqs.csv and distance_matrix.csv are required; a missing one yields
// ErrMissingFile. offices.csv is optional: without it a warning is logged
// and no office has a transfer record. A nil logger discards.
//
// The network allows loops, since distance matrices usually carry their
// zero diagonal.
func LoadReference(dir string, logger *slog.Logger) (*Reference, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reqPath := filepath.Join(dir, RequestsFile)
	matrixPath := filepath.Join(dir, DistanceMatrixFile)
	for _, p := range []string{reqPath, matrixPath} {
		if _, err := os.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrMissingFile, p)
			}
			return nil, err
		}
	}

	logger.Info("loading reference tables", slog.String("dir", dir))

	ref := &Reference{Network: core.NewNetwork(core.WithLoops())}

	if err := readFile(reqPath, func(r io.Reader) (err error) {
		ref.Requests, err = ReadRequests(r)
		return err
	}); err != nil {
		return nil, err
	}

	if err := readFile(matrixPath, func(r io.Reader) error {
		return ReadDistanceMatrix(r, ref.Network)
	}); err != nil {
		return nil, err
	}

	officesPath := filepath.Join(dir, OfficesFile)
	err := readFile(officesPath, func(r io.Reader) error {
		n, err := ReadOffices(r, ref.Network)
		if err == nil {
			logger.Info("offices loaded", slog.Int("transfer_offices", n))
		}
		return err
	})
	switch {
	case err == nil:
		ref.HasOffices = true
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("offices.csv not found, transfers will not be accounted", slog.String("dir", dir))
	default:
		return nil, err
	}

	logger.Debug("reference loaded",
		slog.Int("requests", len(ref.Requests)),
		slog.Int("offices", ref.Network.OfficeCount()),
		slog.Int("edges", ref.Network.EdgeCount()))

	return ref, nil
}

// UnreachableRequests lists the expected requests whose destination cannot
// be reached from their source over the distance matrix, ordered by key.
// A source missing from the network makes its requests unreachable.
func (r *Reference) UnreachableRequests(ctx context.Context) ([]flow.RequestKey, error) {
	reach := make(map[string]map[string]int)
	var out []flow.RequestKey
	for key := range r.Requests {
		depth, ok := reach[key.Source]
		if !ok {
			var err error
			depth, err = r.Network.Reachable(ctx, key.Source)
			if err != nil && !errors.Is(err, core.ErrOfficeNotFound) {
				return nil, err
			}
			reach[key.Source] = depth
		}
		if _, ok := depth[key.Destination]; !ok {
			out = append(out, key)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}

// ReadRequests reads a reqs.csv stream. Rows with the same key are summed.
func ReadRequests(r io.Reader) (map[flow.RequestKey]float64, error) {
	t, err := newTable(RequestsFile, r, "src_office_id", "dst_office_id", "volume")
	if err != nil {
		return nil, err
	}
	out := make(map[flow.RequestKey]float64)
	for {
		ok, err := t.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		key := flow.RequestKey{Source: t.get("src_office_id"), Destination: t.get("dst_office_id")}
		if key.Source == "" || key.Destination == "" {
			return nil, t.fail("", flow.ErrEmptyNodeID)
		}
		vol, err := t.float("volume")
		if err != nil {
			return nil, err
		}
		out[key] += vol
	}
}

// ReadDistanceMatrix reads a distance_matrix.csv stream into net. The
// optional price column defaults to 0. Attribute and duplicate-pair errors
// from net are reported with their row.
func ReadDistanceMatrix(r io.Reader, net *core.Network) error {
	t, err := newTable(DistanceMatrixFile, r, "src", "dst", "distance", "time", "price_per_km")
	if err != nil {
		return err
	}
	for {
		ok, err := t.next()
		if err != nil || !ok {
			return err
		}
		e := core.Edge{From: t.get("src"), To: t.get("dst")}
		if e.Distance, err = t.float("distance"); err != nil {
			return err
		}
		if e.Time, err = t.float("time"); err != nil {
			return err
		}
		if e.PricePerKm, err = t.float("price_per_km"); err != nil {
			return err
		}
		if e.Price, err = t.optionalFloat("price"); err != nil {
			return err
		}
		if err := net.AddEdge(e); err != nil {
			return t.fail("", err)
		}
	}
}

// ReadOffices reads an offices.csv stream and attaches transfer records to
// net. It returns the number of records read.
func ReadOffices(r io.Reader, net *core.Network) (int, error) {
	t, err := newTable(OfficesFile, r, "office_id", "transfer_price", "transfer_max")
	if err != nil {
		return 0, err
	}
	n := 0
	for {
		ok, err := t.next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		var rec core.Transfer
		if rec.Price, err = t.float("transfer_price"); err != nil {
			return n, err
		}
		if rec.Capacity, err = t.float("transfer_max"); err != nil {
			return n, err
		}
		if err := net.SetTransfer(t.get("office_id"), rec); err != nil {
			return n, t.fail("", err)
		}
		n++
	}
}

// readFile opens path and hands it to fn. Open errors keep fs.ErrNotExist
// reachable through errors.Is.
func readFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
