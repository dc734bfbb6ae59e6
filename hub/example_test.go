package hub_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/calchub/arith"
	"github.com/katalvlaran/calchub/hub"
)

func ExampleHub_Dispatch() {
	h := hub.New(hub.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	for _, req := range []hub.Request{
		hub.ClassicRequest{Op: arith.Mul, A: 10, B: 5},
		hub.CurrencyRequest{Amount: 1, From: "JPY", To: "CAD"},
		hub.MatrixRequest{Cells: [][]float64{{1, 0}, {0, 0}}},
		hub.PlotRequest{Expression: "x", XMin: 0, XMax: 200},
	} {
		resp := h.Dispatch(req)
		fmt.Printf("%s/%s: %s\n", resp.Mode, resp.Level, resp.Message)
	}
	// Output:
	// classic/success: Result: 50
	// currency/info: Rate for this specific pair is updating. Try USD to INR!
	// matrix/info: Determinant: 0
	// Eigenvalues: [0 1]
	// Inverse:
	// Non-invertible
	// plot/error: hub: request out of bounds: x range [0, 200] must lie within [-100, 100] with min < max
}
