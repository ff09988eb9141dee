package floorplan

import (
	"strconv"

	"expohall/internal/client/store"
)

// DefaultBoothCount is the size of the placeholder grid.
const DefaultBoothCount = 60

// ProceduralBooths synthesizes a deterministic grid of placeholder booths so
// the floor plan is never empty during development or demos. The layout is
// ten booths per row, alternating 1x1 and 2x1 tiers, with a cyclic status
// pattern for visual variety.
func ProceduralBooths(n int) []store.Booth {
	booths := make([]store.Booth, 0, n)
	for i := 0; i < n; i++ {
		status := store.StatusAvailable
		switch {
		case i%7 == 0:
			status = store.StatusReserved
		case i%5 == 0:
			status = store.StatusOccupied
		}

		size := store.Size1x1
		price := 1300
		if i%2 != 0 {
			size = store.Size2x1
			price = 1600
		}

		id := strconv.Itoa(i + 1)
		booths = append(booths, store.Booth{
			ID:     id,
			Number: id,
			X:      (i%10)*90 + 40,
			Y:      (i/10)*80 + 50,
			Width:  70,
			Height: 60,
			Price:  price,
			Size:   size,
			Status: status,
		})
	}
	return booths
}
