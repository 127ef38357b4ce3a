package game

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Render draws the court on a GridSize x GridSize board. Row 1 is y near 0,
// the paddle occupies the rightmost column.
func (c *Court) Render(s State) string {
	p := c.physics
	d := c.Discretize(s)
	missed := c.Missed(s)
	width := 1.0 / float64(p.GridSize)

	var b strings.Builder
	border := "+" + strings.Repeat("-", p.GridSize) + "+"
	b.WriteString(fmt.Sprint(aurora.White(border)))
	b.WriteByte('\n')
	for row := 1; row <= p.GridSize; row++ {
		b.WriteString(fmt.Sprint(aurora.White("|")))
		for col := 1; col <= p.GridSize; col++ {
			if row == d.BallY && col == d.BallX {
				b.WriteString(fmt.Sprint(aurora.Yellow("o")))
			} else {
				b.WriteByte(' ')
			}
		}
		low, high := float64(row-1)*width, float64(row)*width
		if low < s.PaddleY+p.PaddleHeight && high > s.PaddleY {
			if missed {
				b.WriteString(fmt.Sprint(aurora.Red("#")))
			} else {
				b.WriteString(fmt.Sprint(aurora.Green("#")))
			}
		} else {
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString(fmt.Sprint(aurora.White(border)))
	b.WriteByte('\n')
	b.WriteString(fmt.Sprint(aurora.Blue(s.String())))
	b.WriteByte('\n')
	return b.String()
}
