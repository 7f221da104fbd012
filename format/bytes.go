package format

import "fmt"

// Decimal (SI) units, matching how sequencing tools report file sizes.
const (
	Byte     int64 = 1
	KiloByte       = 1000 * Byte
	MegaByte       = 1000 * KiloByte
	GigaByte       = 1000 * MegaByte
	TeraByte       = 1000 * GigaByte
)

var byteUnits = []struct {
	size int64
	name string
}{
	{TeraByte, "TB"},
	{GigaByte, "GB"},
	{MegaByte, "MB"},
	{KiloByte, "KB"},
}

func HumanBytes(b int64) string {
	for _, u := range byteUnits {
		if b > u.size {
			return fmt.Sprintf("%.1f %s", float64(b)/float64(u.size), u.name)
		}
	}
	return fmt.Sprintf("%d B", b)
}
