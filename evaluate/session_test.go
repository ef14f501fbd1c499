package evaluate_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sketchscore/distfield"
	"github.com/katalvlaran/sketchscore/evaluate"
	"github.com/katalvlaran/sketchscore/pixel"
)

// tinyOptions scales the engine down to the canonical 3×3 scenario:
// 1-cell blocks, top-5 scoring, divisor 5.0.
func tinyOptions() evaluate.Options {
	opts := evaluate.DefaultOptions()
	opts.CanvasSize = 3
	opts.GridSize = 3
	return opts
}

// SessionSuite exercises the streaming session state machine.
type SessionSuite struct {
	suite.Suite
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

// TestConstructionErrors rejects degenerate references and options.
func (s *SessionSuite) TestConstructionErrors() {
	_, err := evaluate.NewSession(nil, tinyOptions())
	require.ErrorIs(s.T(), err, evaluate.ErrEmptyReference)

	// Only out-of-bounds pixels: same failure, by the lenient-drop policy.
	_, err = evaluate.NewSession([]pixel.Coord{{Row: 9, Col: 9}}, tinyOptions())
	require.ErrorIs(s.T(), err, evaluate.ErrEmptyReference)

	bad := tinyOptions()
	bad.CanvasSize = 0
	_, err = evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, bad)
	require.ErrorIs(s.T(), err, evaluate.ErrBadCanvasSize)

	bad = tinyOptions()
	bad.TopK = 0
	_, err = evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, bad)
	require.ErrorIs(s.T(), err, evaluate.ErrBadTopK)
}

// TestCanonicalScenario pins the hand-computed 3×3 case: reference (1,1),
// observation (0,0). Cross distances are 2 in both directions, so the grid
// holds two 2s, top-5 = 4/25 and mean = 40%.
func (s *SessionSuite) TestCanonicalScenario() {
	sess, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)

	score, err := sess.AddObservation([]pixel.Coord{{Row: 0, Col: 0}})
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.16, score, 1e-12)
	require.InDelta(s.T(), score, sess.TopKError(), 0)

	m, err := sess.FullResult()
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.16, m.TopK, 1e-12)
	require.InDelta(s.T(), 40.0, m.Mean, 1e-12)
	require.Equal(s.T(), 1, m.PixelCount)
	require.Equal(s.T(), [][]int{{2, 0, 0}, {0, 2, 0}, {0, 0, 0}}, m.Grid)
	require.Equal(s.T(), "Top 5 error: 0.2%\nMean error: 40.0%\nPixel count: 1", m.Summary())
}

// TestFullResultBeforeDrawing fails with ErrEmptyObservation.
func (s *SessionSuite) TestFullResultBeforeDrawing() {
	sess, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)

	_, err = sess.FullResult()
	require.ErrorIs(s.T(), err, evaluate.ErrEmptyObservation)
}

// TestIdempotentAdd: re-sending an already-present batch changes nothing.
func (s *SessionSuite) TestIdempotentAdd() {
	sess, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)

	batch := []pixel.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 2}}
	first, err := sess.AddObservation(batch)
	require.NoError(s.T(), err)
	m1, err := sess.FullResult()
	require.NoError(s.T(), err)

	second, err := sess.AddObservation(batch)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)

	m2, err := sess.FullResult()
	require.NoError(s.T(), err)
	require.Equal(s.T(), m1, m2)
	require.Equal(s.T(), 2, sess.ObservationPixelCount())
}

// TestBatchingEquivalence: streaming the observation in several batches
// converges to exactly the result of a single-batch session.
func (s *SessionSuite) TestBatchingEquivalence() {
	ref := []pixel.Coord{{Row: 10, Col: 10}, {Row: 10, Col: 11}, {Row: 30, Col: 5}}
	obs := []pixel.Coord{
		{Row: 0, Col: 0}, {Row: 5, Col: 20}, {Row: 12, Col: 12},
		{Row: 31, Col: 4}, {Row: 39, Col: 39}, {Row: 20, Col: 0},
	}
	opts := evaluate.DefaultOptions()
	opts.CanvasSize = 40
	opts.GridSize = 10

	streamed, err := evaluate.NewSession(ref, opts)
	require.NoError(s.T(), err)
	for _, c := range obs {
		_, err = streamed.AddObservation([]pixel.Coord{c})
		require.NoError(s.T(), err)
	}

	oneShot, err := evaluate.NewSession(ref, opts)
	require.NoError(s.T(), err)
	_, err = oneShot.AddObservation(obs)
	require.NoError(s.T(), err)

	mStreamed, err := streamed.FullResult()
	require.NoError(s.T(), err)
	mOneShot, err := oneShot.FullResult()
	require.NoError(s.T(), err)
	require.Equal(s.T(), mOneShot, mStreamed)
}

// TestResetCorrectness: after a reset, scoring fails until pixels return,
// and a replayed observation reproduces a fresh session bit for bit.
func (s *SessionSuite) TestResetCorrectness() {
	ref := []pixel.Coord{{Row: 1, Col: 1}}
	obs := []pixel.Coord{{Row: 0, Col: 0}, {Row: 2, Col: 1}}

	sess, err := evaluate.NewSession(ref, tinyOptions())
	require.NoError(s.T(), err)
	_, err = sess.AddObservation([]pixel.Coord{{Row: 2, Col: 2}}) // noise before reset
	require.NoError(s.T(), err)

	sess.ResetObservation()
	require.Zero(s.T(), sess.TopKError())
	require.Zero(s.T(), sess.ObservationPixelCount())
	_, err = sess.FullResult()
	require.ErrorIs(s.T(), err, evaluate.ErrEmptyObservation)

	_, err = sess.AddObservation(obs)
	require.NoError(s.T(), err)
	afterReset, err := sess.FullResult()
	require.NoError(s.T(), err)

	fresh, err := evaluate.NewSession(ref, tinyOptions())
	require.NoError(s.T(), err)
	_, err = fresh.AddObservation(obs)
	require.NoError(s.T(), err)
	wantFresh, err := fresh.FullResult()
	require.NoError(s.T(), err)

	require.Equal(s.T(), wantFresh, afterReset)
}

// TestOutOfBoundsBatch is accepted without error and has zero effect.
func (s *SessionSuite) TestOutOfBoundsBatch() {
	sess, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)
	before, err := sess.AddObservation([]pixel.Coord{{Row: 0, Col: 0}})
	require.NoError(s.T(), err)

	score, err := sess.AddObservation([]pixel.Coord{{Row: -1, Col: 0}, {Row: 3, Col: 3}, {Row: 0, Col: 99}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, score)
	require.Equal(s.T(), 1, sess.ObservationPixelCount())
}

// TestExportRestore_RoundTrip: the restored session's reference side is
// element-wise identical and its subsequent outputs match a fresh
// equivalent session, including through a JSON hop.
func (s *SessionSuite) TestExportRestore_RoundTrip() {
	ref := []pixel.Coord{{Row: 1, Col: 1}, {Row: 2, Col: 0}}
	obs := []pixel.Coord{{Row: 0, Col: 2}, {Row: 2, Col: 2}}

	original, err := evaluate.NewSession(ref, tinyOptions())
	require.NoError(s.T(), err)

	raw, err := json.Marshal(original.ExportState())
	require.NoError(s.T(), err)
	var state evaluate.SessionState
	require.NoError(s.T(), json.Unmarshal(raw, &state))

	restored, err := evaluate.Restore(state, tinyOptions())
	require.NoError(s.T(), err)
	require.Equal(s.T(), original.ReferencePixelCount(), restored.ReferencePixelCount())

	// Re-exporting yields identical reference-side state.
	require.Equal(s.T(), original.ExportState(), restored.ExportState())

	_, err = original.AddObservation(obs)
	require.NoError(s.T(), err)
	_, err = restored.AddObservation(obs)
	require.NoError(s.T(), err)

	mOrig, err := original.FullResult()
	require.NoError(s.T(), err)
	mRest, err := restored.FullResult()
	require.NoError(s.T(), err)
	require.Equal(s.T(), mOrig, mRest)
}

// TestRestore_ShapeMismatch rejects a cache whose shape disagrees with the
// configured canvas.
func (s *SessionSuite) TestRestore_ShapeMismatch() {
	original, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)
	state := original.ExportState()

	// Corrupt the flat data length.
	state.ReferenceHeatmap.Data = state.ReferenceHeatmap.Data[:len(state.ReferenceHeatmap.Data)-1]
	_, err = evaluate.Restore(state, tinyOptions())
	require.ErrorIs(s.T(), err, distfield.ErrShapeMismatch)

	// Valid heatmap, wrong canvas size.
	state = original.ExportState()
	opts := tinyOptions()
	opts.CanvasSize = 4
	opts.GridSize = 2
	_, err = evaluate.Restore(state, opts)
	require.ErrorIs(s.T(), err, distfield.ErrShapeMismatch)
}

// TestDistinctSessionIDs: independent sessions never share identity.
func (s *SessionSuite) TestDistinctSessionIDs() {
	a, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)
	b, err := evaluate.NewSession([]pixel.Coord{{Row: 1, Col: 1}}, tinyOptions())
	require.NoError(s.T(), err)
	require.NotEqual(s.T(), a.ID(), b.ID())
}
