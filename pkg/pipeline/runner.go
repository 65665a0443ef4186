package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/vecnet/pkg/cache"
	"github.com/matzehuels/vecnet/pkg/codec"
	"github.com/matzehuels/vecnet/pkg/config"
	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	vecio "github.com/matzehuels/vecnet/pkg/io"
	"github.com/matzehuels/vecnet/pkg/observability"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// Cache key types reported to observability hooks.
const (
	keyTypeEncode = "encode"
	keyTypeDecode = "decode"
)

// Runner encapsulates codec execution with limits and caching.
// Both the CLI and the tool envelope use it so the behavior is the same.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	Limits config.Limits
	TTL    time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// Limits and TTL start at their defaults and may be changed before use.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		Limits: config.Default().Limits,
		TTL:    cache.DefaultTTL,
	}
}

// Encode reads a dense network document and returns its sparse encoding.
func (r *Runner) Encode(ctx context.Context, data []byte) (*EncodeResult, error) {
	if err := vecerrors.ValidatePayloadSize(len(data), r.Limits.MaxPayloadBytes); err != nil {
		return nil, err
	}
	n, err := vecio.ReadNetwork(bytes.NewReader(data))
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "read network")
	}
	res, err := r.EncodeNetwork(ctx, n)
	if err != nil {
		return nil, err
	}
	res.Stats.InputBytes = len(data)
	return res, nil
}

// cachedEncode is the cache entry for an encode result.
type cachedEncode struct {
	Sparse   codec.Sparse `json:"sparse"`
	Warnings []string     `json:"warnings,omitempty"`
}

// EncodeNetwork checks n against the limits, validates its indices and
// encodes it.
func (r *Runner) EncodeNetwork(ctx context.Context, n vector.Network) (*EncodeResult, error) {
	if err := r.checkNetwork(n); err != nil {
		return nil, err
	}

	hooks := observability.Codec()
	hooks.OnEncodeStart(ctx, n.VertexCount(), n.SegmentCount())
	start := time.Now()

	canon, err := json.Marshal(n)
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "serialize network")
	}
	key := r.Keyer.EncodeKey(cache.Hash(canon))

	var entry cachedEncode
	hit := r.load(ctx, key, keyTypeEncode, func(data []byte) error {
		return json.Unmarshal(data, &entry)
	})
	if hit {
		for _, w := range entry.Warnings {
			r.Logger.Warn(w)
		}
	} else {
		entry = cachedEncode{}
		entry.Sparse = codec.EncodeWithOptions(n, codec.Options{
			Warn: func(format string, args ...any) {
				msg := fmt.Sprintf(format, args...)
				entry.Warnings = append(entry.Warnings, msg)
				r.Logger.Warn(msg)
				hooks.OnHandleConflict(ctx, msg)
			},
		})
	}

	var buf bytes.Buffer
	if err := vecio.WriteSparse(entry.Sparse, &buf); err != nil {
		err = vecerrors.Wrap(vecerrors.ErrCodeInternal, err, "serialize sparse network")
		hooks.OnEncodeComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}
	if !hit {
		if data, err := json.Marshal(entry); err == nil {
			r.store(ctx, key, keyTypeEncode, data)
		}
	}

	res := &EncodeResult{
		Sparse:   entry.Sparse,
		Data:     buf.Bytes(),
		Warnings: entry.Warnings,
		Stats:    sparseStats(entry.Sparse),
		CacheHit: hit,
	}
	res.Stats.Vertices = n.VertexCount()
	res.Stats.Segments = n.SegmentCount()
	res.Stats.OutputBytes = len(res.Data)
	res.Stats.Duration = time.Since(start)
	hooks.OnEncodeComplete(ctx, len(res.Data), res.Stats.Duration, nil)

	r.Logger.Debug("encoded network",
		"vertices", res.Stats.Vertices,
		"segments", res.Stats.Segments,
		"paths", res.Stats.Paths,
		"cached", hit,
		"duration", res.Stats.Duration)
	return res, nil
}

// Decode reads a sparse network document and returns the dense network.
func (r *Runner) Decode(ctx context.Context, data []byte) (*DecodeResult, error) {
	if err := vecerrors.ValidatePayloadSize(len(data), r.Limits.MaxPayloadBytes); err != nil {
		return nil, err
	}
	s, err := vecio.ReadSparse(bytes.NewReader(data))
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "read sparse network")
	}
	res, err := r.DecodeSparse(ctx, s)
	if err != nil {
		return nil, err
	}
	res.Stats.InputBytes = len(data)
	return res, nil
}

// DecodeSparse decodes s. Codec errors are returned unchanged so their
// field and range information reaches the caller.
func (r *Runner) DecodeSparse(ctx context.Context, s codec.Sparse) (*DecodeResult, error) {
	canon, err := json.Marshal(s)
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "serialize sparse network")
	}

	hooks := observability.Codec()
	hooks.OnDecodeStart(ctx, len(canon))
	start := time.Now()

	key := r.Keyer.DecodeKey(cache.Hash(canon))
	var n vector.Network
	hit := r.load(ctx, key, keyTypeDecode, func(data []byte) error {
		var err error
		n, err = vecio.ReadNetwork(bytes.NewReader(data))
		return err
	})
	if !hit {
		n, err = codec.Decode(s)
		if err != nil {
			hooks.OnDecodeComplete(ctx, 0, 0, time.Since(start), err)
			return nil, err
		}
	}
	if err := r.checkCounts(n); err != nil {
		hooks.OnDecodeComplete(ctx, n.VertexCount(), n.SegmentCount(), time.Since(start), err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := vecio.WriteNetwork(n, &buf); err != nil {
		err = vecerrors.Wrap(vecerrors.ErrCodeInternal, err, "serialize network")
		hooks.OnDecodeComplete(ctx, n.VertexCount(), n.SegmentCount(), time.Since(start), err)
		return nil, err
	}
	if !hit {
		r.store(ctx, key, keyTypeDecode, buf.Bytes())
	}

	res := &DecodeResult{
		Network:  n,
		Data:     buf.Bytes(),
		Stats:    sparseStats(s),
		CacheHit: hit,
	}
	res.Stats.Vertices = n.VertexCount()
	res.Stats.Segments = n.SegmentCount()
	res.Stats.OutputBytes = len(res.Data)
	res.Stats.Duration = time.Since(start)
	hooks.OnDecodeComplete(ctx, res.Stats.Vertices, res.Stats.Segments, res.Stats.Duration, nil)

	r.Logger.Debug("decoded network",
		"vertices", res.Stats.Vertices,
		"segments", res.Stats.Segments,
		"cached", hit,
		"duration", res.Stats.Duration)
	return res, nil
}

// Roundtrip encodes the dense network in data, decodes the result and
// encodes again, reporting whether the two encodings agree.
func (r *Runner) Roundtrip(ctx context.Context, data []byte) (*RoundtripResult, error) {
	if err := vecerrors.ValidatePayloadSize(len(data), r.Limits.MaxPayloadBytes); err != nil {
		return nil, err
	}
	n, err := vecio.ReadNetwork(bytes.NewReader(data))
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "read network")
	}

	first, err := r.EncodeNetwork(ctx, n)
	if err != nil {
		return nil, err
	}
	decoded, err := codec.Decode(first.Sparse)
	if err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInternal, err, "decode own encoding")
	}
	second := codec.Encode(decoded)

	a, errA := json.Marshal(first.Sparse)
	b, errB := json.Marshal(second)
	if errA != nil || errB != nil {
		return nil, vecerrors.New(vecerrors.ErrCodeInternal, "serialize encodings for comparison")
	}

	res := &RoundtripResult{
		First:     first.Sparse,
		Second:    second,
		Stable:    bytes.Equal(a, b),
		Conflicts: n.HandleConflicts(),
		Stats:     first.Stats,
	}
	res.Stats.InputBytes = len(data)
	if !res.Stable {
		r.Logger.Warn("re-encoding differs from first encoding", "conflicts", len(res.Conflicts))
	}
	return res, nil
}

// checkNetwork enforces limits and index validity on a dense network.
func (r *Runner) checkNetwork(n vector.Network) error {
	if err := r.checkCounts(n); err != nil {
		return err
	}
	if err := n.Validate(); err != nil {
		return vecerrors.Wrap(vecerrors.ErrCodeInvalidInput, err, "invalid network")
	}
	return nil
}

func (r *Runner) checkCounts(n vector.Network) error {
	if err := vecerrors.ValidateCount("vertices", n.VertexCount(), r.Limits.MaxVertices); err != nil {
		return err
	}
	if err := vecerrors.ValidateCount("segments", n.SegmentCount(), r.Limits.MaxSegments); err != nil {
		return err
	}
	return vecerrors.ValidateCount("regions", len(n.Regions), r.Limits.MaxRegions)
}

// load fetches key and hands the data to decode. It reports a hit only
// when both succeed; cache failures are logged and treated as misses.
func (r *Runner) load(ctx context.Context, key, keyType string, decode func([]byte) error) bool {
	data, ok, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache read failed", "type", keyType, "err", err)
	}
	if err != nil || !ok {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
	if err := decode(data); err != nil {
		r.Logger.Debug("discarding unreadable cache entry", "type", keyType, "err", err)
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return true
}

func (r *Runner) store(ctx context.Context, key, keyType string, data []byte) {
	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Debug("cache write failed", "type", keyType, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
