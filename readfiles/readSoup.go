package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/softmesh/hemesh/geometry2D"
)

/*
Polygon soup files are plain text. Lines starting with % are comments. The
file opens with the polygon count, then one block per polygon: its vertex
count followed by one "x y" coordinate pair per line, listing the ring
structurally open (no repeated closing vertex):

	NPOLY= 2
	NV= 3
	0.0 0.0
	1.0 0.0
	1.0 1.0
	NV= 3
	0.0 0.0
	1.0 1.0
	0.0 1.0

Rings are normalized to clockwise winding (y-down convention) on read, so a
soup read here can go straight into the mesh builder
*/
func ReadSoup(filename string, verbose bool) (soup []geometry2D.Polygon) {
	var (
		file *os.File
		err  error
	)
	if verbose {
		fmt.Printf("Reading polygon soup file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		panic(fmt.Errorf("unable to open file %s\n %s", filename, err))
	}
	defer file.Close()
	soup = ReadSoupData(bufio.NewReader(file))
	if verbose {
		fmt.Printf("Read %d polygons\n", len(soup))
	}
	return
}

func ReadSoupData(reader *bufio.Reader) (soup []geometry2D.Polygon) {
	nPoly := readNumber(reader)
	soup = make([]geometry2D.Polygon, nPoly)
	for n := 0; n < nPoly; n++ {
		soup[n] = readPolygon(reader)
	}
	return
}

func readPolygon(reader *bufio.Reader) (ring geometry2D.Polygon) {
	var (
		x, y float64
		err  error
	)
	nv := readNumber(reader)
	ring = make(geometry2D.Polygon, nv)
	for i := 0; i < nv; i++ {
		line := getLineNoComments(reader)
		if _, err = fmt.Sscanf(line, "%f %f", &x, &y); err != nil {
			panic(fmt.Errorf("unable to read coordinates from line [%s]", line))
		}
		ring[i] = geometry2D.NewPoint(x, y)
	}
	if !geometry2D.IsClockwise(ring) {
		geometry2D.Reverse(ring) // enforce CW orientation
	}
	return
}

// WriteSoup writes the soup in the format ReadSoup consumes, preserving
// polygon order and winding.
func WriteSoup(filename string, soup []geometry2D.Polygon) {
	var (
		file *os.File
		err  error
	)
	if file, err = os.Create(filename); err != nil {
		panic(fmt.Errorf("unable to create file %s\n %s", filename, err))
	}
	defer file.Close()
	fmt.Fprintf(file, "NPOLY= %d\n", len(soup))
	for _, ring := range soup {
		fmt.Fprintf(file, "NV= %d\n", len(ring))
		for _, pt := range ring {
			fmt.Fprintf(file, "%.17g %.17g\n", pt.X[0], pt.X[1])
		}
	}
}

func getToken(reader *bufio.Reader) (token string) {
	var (
		err error
	)
	line := getLineNoComments(reader)
	ind := strings.Index(line, "=")
	if ind < 0 {
		err = fmt.Errorf("badly formed input line [%s], should have an =", line)
		panic(err)
	}
	token = line[ind+1:]
	return
}

func readNumber(reader *bufio.Reader) (num int) {
	var (
		err error
	)
	token := getToken(reader)
	if _, err = fmt.Sscanf(token, "%d", &num); err != nil {
		err = fmt.Errorf("unable to read number from token: [%s]", token)
		panic(err)
	}
	return
}

func getLineNoComments(reader *bufio.Reader) (line string) {
	for {
		line = strings.Trim(getLine(reader), " ")
		ind := strings.Index(line, "%")
		if ind < 0 || ind != 0 {
			return
		}
	}
}

func getLine(reader *bufio.Reader) (line string) {
	var (
		err error
	)
	line, err = reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			err = fmt.Errorf("early end of file")
		}
		panic(err)
	}
	line = line[:len(line)-1] // Strip away the newline
	return
}
