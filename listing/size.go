package listing

import (
	"math"
	"strconv"
)

var sizeUnits = [...]string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}

// FormatSize renders a byte count with binary units, at most two decimals
// and no trailing zeros: 1536 -> "1.5 KiB", 1024 -> "1 KiB".
func FormatSize(size int64) string {
	v := float64(size)
	exp := 0
	for v >= 1024 && exp < len(sizeUnits)-1 {
		v /= 1024
		exp++
	}
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + sizeUnits[exp]
}
