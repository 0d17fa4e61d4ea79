package proto

import "strconv"

// Version is an HTTP version pair as read from the start line. The zero
// value means the version is not known yet.
type Version struct {
	Major, Minor uint16
}

// MaxComponent bounds each of the version components. Anything above is
// rejected by the parser.
const MaxComponent = 999

var (
	HTTP09 = Version{0, 9}
	HTTP10 = Version{1, 0}
	HTTP11 = Version{1, 1}
)

// KeepAliveDefault tells whether connections of this version persist unless
// explicitly closed. True since HTTP/1.1.
func (v Version) KeepAliveDefault() bool {
	return v.Major > 1 || (v.Major == 1 && v.Minor >= 1)
}

func (v Version) String() string {
	return "HTTP/" + strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor))
}
