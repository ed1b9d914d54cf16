package shp

import (
	"bufio"
	"fmt"
	"strings"
)

// Lambert holds the parameters of a Lambert Conformal Conic
// projection description. A nil *Lambert means geographic WGS84.
type Lambert struct {
	Lat1 float64
	Lat2 float64
	Lat0 float64
	Lon0 float64
}

const wgs84WKT = `GEOGCS["GCS_WGS_1984",DATUM["D_WGS_1984",` +
	`SPHEROID["WGS_1984",6378137.0,298.257223563]],` +
	`PRIMEM["Greenwich",0.0],UNIT["Degree",0.0174532925199433]]`

func lambertWKT(l *Lambert) string {
	return fmt.Sprintf(`PROJCS["Lambert_Conformal_Conic",`+
		`%s,PROJECTION["Lambert_Conformal_Conic"],`+
		`PARAMETER["Standard_Parallel_1",%g],`+
		`PARAMETER["Standard_Parallel_2",%g],`+
		`PARAMETER["Latitude_Of_Origin",%g],`+
		`PARAMETER["Central_Meridian",%g],`+
		`PARAMETER["False_Easting",0.0],`+
		`PARAMETER["False_Northing",0.0],`+
		`UNIT["Meter",1.0]]`,
		wgs84WKT, l.Lat1, l.Lat2, l.Lat0, l.Lon0)
}

// legacyGrid renders the key-value projection syntax still consumed
// by older grid tooling.
func legacyGrid(l *Lambert) string {
	var b strings.Builder
	if l == nil {
		b.WriteString("Projection: Geographic\n")
		b.WriteString("Datum: WGS84\n")
		b.WriteString("Units: Degrees\n")
		return b.String()
	}
	b.WriteString("Projection: Lambert Conformal Conic\n")
	fmt.Fprintf(&b, "Standard Parallel 1: %g\n", l.Lat1)
	fmt.Fprintf(&b, "Standard Parallel 2: %g\n", l.Lat2)
	fmt.Fprintf(&b, "Latitude of Origin: %g\n", l.Lat0)
	fmt.Fprintf(&b, "Central Meridian: %g\n", l.Lon0)
	b.WriteString("Datum: WGS84\n")
	b.WriteString("Units: Meters\n")
	return b.String()
}

// WritePrj writes base.prj describing either geographic WGS84 (nil
// lambert) or a Lambert Conformal Conic projection, in OGC WKT or the
// legacy grid key-value syntax.
func WritePrj(base string, lambert *Lambert, wkt bool) error {
	var text string
	switch {
	case wkt && lambert == nil:
		text = wgs84WKT + "\n"
	case wkt:
		text = lambertWKT(lambert) + "\n"
	default:
		text = legacyGrid(lambert)
	}

	return writeFile(base+".prj", func(w *bufio.Writer) error {
		_, err := w.WriteString(text)
		return err
	})
}
