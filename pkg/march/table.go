package march

// shapes maps a cube mask to the edges its surface crosses. Each consecutive
// triple is one triangle, wound so that (v1-v0) x (v2-v0) faces the corners
// that are below the isolevel. Rows 0 and 255 are empty.
var shapes = [256][]Edge{
	{},
	{EdgeX00, EdgeZ00, EdgeY00},
	{EdgeX00, EdgeY10, EdgeZ10},
	{EdgeZ10, EdgeZ00, EdgeY00, EdgeY10, EdgeZ10, EdgeY00},
	{EdgeZ10, EdgeY11, EdgeX01},
	{EdgeX00, EdgeZ00, EdgeY00, EdgeZ10, EdgeY11, EdgeX01},
	{EdgeY10, EdgeY11, EdgeX01, EdgeX00, EdgeY10, EdgeX01},
	{EdgeX01, EdgeZ00, EdgeY00, EdgeX01, EdgeY00, EdgeY11, EdgeY11, EdgeY00, EdgeY10},
	{EdgeZ00, EdgeX01, EdgeY01},
	{EdgeX00, EdgeX01, EdgeY01, EdgeY00, EdgeX00, EdgeY01},
	{EdgeZ10, EdgeX00, EdgeY10, EdgeX01, EdgeY01, EdgeZ00},
	{EdgeZ10, EdgeX01, EdgeY01, EdgeZ10, EdgeY01, EdgeY10, EdgeY10, EdgeY01, EdgeY00},
	{EdgeZ00, EdgeZ10, EdgeY11, EdgeY01, EdgeZ00, EdgeY11},
	{EdgeX00, EdgeZ10, EdgeY11, EdgeX00, EdgeY11, EdgeY00, EdgeY00, EdgeY11, EdgeY01},
	{EdgeZ00, EdgeX00, EdgeY10, EdgeZ00, EdgeY10, EdgeY01, EdgeY01, EdgeY10, EdgeY11},
	{EdgeY10, EdgeY11, EdgeY00, EdgeY11, EdgeY01, EdgeY00},
	{EdgeX10, EdgeY00, EdgeZ01},
	{EdgeX10, EdgeX00, EdgeZ00, EdgeZ01, EdgeX10, EdgeZ00},
	{EdgeX00, EdgeY10, EdgeZ10, EdgeY00, EdgeZ01, EdgeX10},
	{EdgeX10, EdgeY10, EdgeZ10, EdgeX10, EdgeZ10, EdgeZ01, EdgeZ01, EdgeZ10, EdgeZ00},
	{EdgeZ10, EdgeY11, EdgeX01, EdgeY00, EdgeZ01, EdgeX10},
	{EdgeZ00, EdgeZ01, EdgeX10, EdgeZ00, EdgeX10, EdgeX00, EdgeZ10, EdgeY11, EdgeX01},
	{EdgeY10, EdgeY11, EdgeX01, EdgeY10, EdgeX01, EdgeX00, EdgeY00, EdgeZ01, EdgeX10},
	{EdgeX01, EdgeY10, EdgeY11, EdgeX01, EdgeZ01, EdgeY10, EdgeX01, EdgeZ00, EdgeZ01, EdgeZ01, EdgeX10, EdgeY10},
	{EdgeY00, EdgeZ01, EdgeX10, EdgeZ00, EdgeX01, EdgeY01},
	{EdgeY01, EdgeZ01, EdgeX10, EdgeY01, EdgeX10, EdgeX01, EdgeX01, EdgeX10, EdgeX00},
	{EdgeY10, EdgeZ10, EdgeX00, EdgeY00, EdgeZ01, EdgeX10, EdgeX01, EdgeY01, EdgeZ00},
	{EdgeX10, EdgeY01, EdgeZ01, EdgeY10, EdgeY01, EdgeX10, EdgeY10, EdgeX01, EdgeY01, EdgeY10, EdgeZ10, EdgeX01},
	{EdgeZ00, EdgeZ10, EdgeY11, EdgeZ00, EdgeY11, EdgeY01, EdgeZ01, EdgeX10, EdgeY00},
	{EdgeZ10, EdgeY11, EdgeY01, EdgeZ10, EdgeY01, EdgeX10, EdgeZ10, EdgeX10, EdgeX00, EdgeZ01, EdgeX10, EdgeY01},
	{EdgeX10, EdgeY00, EdgeZ01, EdgeY10, EdgeY01, EdgeX00, EdgeY10, EdgeY11, EdgeY01, EdgeY01, EdgeZ00, EdgeX00},
	{EdgeX10, EdgeY01, EdgeZ01, EdgeX10, EdgeY10, EdgeY01, EdgeY10, EdgeY11, EdgeY01},
	{EdgeY10, EdgeX10, EdgeZ11},
	{EdgeY10, EdgeX10, EdgeZ11, EdgeX00, EdgeZ00, EdgeY00},
	{EdgeX00, EdgeX10, EdgeZ11, EdgeZ10, EdgeX00, EdgeZ11},
	{EdgeY00, EdgeX10, EdgeZ11, EdgeY00, EdgeZ11, EdgeZ00, EdgeZ00, EdgeZ11, EdgeZ10},
	{EdgeZ10, EdgeY11, EdgeX01, EdgeY10, EdgeX10, EdgeZ11},
	{EdgeZ00, EdgeY00, EdgeX00, EdgeZ10, EdgeY11, EdgeX01, EdgeX10, EdgeZ11, EdgeY10},
	{EdgeZ11, EdgeY11, EdgeX01, EdgeZ11, EdgeX01, EdgeX10, EdgeX10, EdgeX01, EdgeX00},
	{EdgeX01, EdgeZ11, EdgeY11, EdgeZ00, EdgeZ11, EdgeX01, EdgeZ00, EdgeX10, EdgeZ11, EdgeZ00, EdgeY00, EdgeX10},
	{EdgeY10, EdgeX10, EdgeZ11, EdgeX01, EdgeY01, EdgeZ00},
	{EdgeX00, EdgeX01, EdgeY01, EdgeX00, EdgeY01, EdgeY00, EdgeX10, EdgeZ11, EdgeY10},
	{EdgeX00, EdgeX10, EdgeZ11, EdgeX00, EdgeZ11, EdgeZ10, EdgeX01, EdgeY01, EdgeZ00},
	{EdgeX01, EdgeZ11, EdgeZ10, EdgeX01, EdgeY00, EdgeZ11, EdgeX01, EdgeY01, EdgeY00, EdgeX10, EdgeZ11, EdgeY00},
	{EdgeY11, EdgeY01, EdgeZ00, EdgeY11, EdgeZ00, EdgeZ10, EdgeY10, EdgeX10, EdgeZ11},
	{EdgeX10, EdgeZ11, EdgeY10, EdgeX00, EdgeZ10, EdgeY00, EdgeY00, EdgeZ10, EdgeY11, EdgeY00, EdgeY11, EdgeY01},
	{EdgeZ11, EdgeX00, EdgeX10, EdgeZ11, EdgeY01, EdgeX00, EdgeZ11, EdgeY11, EdgeY01, EdgeY01, EdgeZ00, EdgeX00},
	{EdgeZ11, EdgeY00, EdgeX10, EdgeZ11, EdgeY11, EdgeY00, EdgeY11, EdgeY01, EdgeY00},
	{EdgeY10, EdgeY00, EdgeZ01, EdgeZ11, EdgeY10, EdgeZ01},
	{EdgeY10, EdgeX00, EdgeZ00, EdgeY10, EdgeZ00, EdgeZ11, EdgeZ11, EdgeZ00, EdgeZ01},
	{EdgeX00, EdgeY00, EdgeZ01, EdgeX00, EdgeZ01, EdgeZ10, EdgeZ10, EdgeZ01, EdgeZ11},
	{EdgeZ10, EdgeZ00, EdgeZ11, EdgeZ00, EdgeZ01, EdgeZ11},
	{EdgeY10, EdgeY00, EdgeZ01, EdgeY10, EdgeZ01, EdgeZ11, EdgeY11, EdgeX01, EdgeZ10},
	{EdgeY11, EdgeX01, EdgeZ10, EdgeY10, EdgeX00, EdgeZ11, EdgeZ11, EdgeX00, EdgeZ00, EdgeZ11, EdgeZ00, EdgeZ01},
	{EdgeY00, EdgeX01, EdgeX00, EdgeY00, EdgeZ11, EdgeX01, EdgeY00, EdgeZ01, EdgeZ11, EdgeY11, EdgeX01, EdgeZ11},
	{EdgeX01, EdgeZ11, EdgeY11, EdgeX01, EdgeZ00, EdgeZ11, EdgeZ00, EdgeZ01, EdgeZ11},
	{EdgeZ01, EdgeZ11, EdgeY10, EdgeZ01, EdgeY10, EdgeY00, EdgeZ00, EdgeX01, EdgeY01},
	{EdgeY10, EdgeZ01, EdgeZ11, EdgeY10, EdgeX01, EdgeZ01, EdgeY10, EdgeX00, EdgeX01, EdgeX01, EdgeY01, EdgeZ01},
	{EdgeX01, EdgeY01, EdgeZ00, EdgeX00, EdgeY00, EdgeZ10, EdgeZ10, EdgeY00, EdgeZ01, EdgeZ10, EdgeZ01, EdgeZ11},
	{EdgeY01, EdgeZ10, EdgeX01, EdgeY01, EdgeZ01, EdgeZ10, EdgeZ01, EdgeZ11, EdgeZ10},
	{EdgeY10, EdgeY00, EdgeZ11, EdgeY00, EdgeZ01, EdgeZ11, EdgeY11, EdgeZ00, EdgeZ10, EdgeY11, EdgeY01, EdgeZ00},
	{EdgeZ11, EdgeX00, EdgeZ01, EdgeZ11, EdgeY10, EdgeX00, EdgeZ01, EdgeX00, EdgeY01, EdgeZ10, EdgeY11, EdgeX00, EdgeY01, EdgeX00, EdgeY11},
	{EdgeY01, EdgeX00, EdgeY11, EdgeY01, EdgeZ00, EdgeX00, EdgeY11, EdgeX00, EdgeZ11, EdgeY00, EdgeZ01, EdgeX00, EdgeZ11, EdgeX00, EdgeZ01},
	{EdgeY01, EdgeZ11, EdgeY11, EdgeZ01, EdgeZ11, EdgeY01},
	{EdgeY11, EdgeZ11, EdgeX11},
	{EdgeX00, EdgeZ00, EdgeY00, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeY10, EdgeZ10, EdgeX00, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeZ10, EdgeZ00, EdgeY00, EdgeZ10, EdgeY00, EdgeY10, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeZ10, EdgeZ11, EdgeX11, EdgeX01, EdgeZ10, EdgeX11},
	{EdgeZ10, EdgeZ11, EdgeX11, EdgeZ10, EdgeX11, EdgeX01, EdgeZ00, EdgeY00, EdgeX00},
	{EdgeY10, EdgeZ11, EdgeX11, EdgeY10, EdgeX11, EdgeX00, EdgeX00, EdgeX11, EdgeX01},
	{EdgeZ11, EdgeY00, EdgeY10, EdgeZ11, EdgeX01, EdgeY00, EdgeZ11, EdgeX11, EdgeX01, EdgeZ00, EdgeY00, EdgeX01},
	{EdgeX01, EdgeY01, EdgeZ00, EdgeY11, EdgeZ11, EdgeX11},
	{EdgeY01, EdgeY00, EdgeX00, EdgeY01, EdgeX00, EdgeX01, EdgeY11, EdgeZ11, EdgeX11},
	{EdgeX00, EdgeY10, EdgeZ10, EdgeX01, EdgeY01, EdgeZ00, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeZ11, EdgeX11, EdgeY11, EdgeZ10, EdgeX01, EdgeY10, EdgeY10, EdgeX01, EdgeY01, EdgeY10, EdgeY01, EdgeY00},
	{EdgeX11, EdgeY01, EdgeZ00, EdgeX11, EdgeZ00, EdgeZ11, EdgeZ11, EdgeZ00, EdgeZ10},
	{EdgeX00, EdgeY01, EdgeY00, EdgeX00, EdgeZ11, EdgeY01, EdgeX00, EdgeZ10, EdgeZ11, EdgeZ11, EdgeX11, EdgeY01},
	{EdgeZ00, EdgeX11, EdgeY01, EdgeX00, EdgeX11, EdgeZ00, EdgeX00, EdgeZ11, EdgeX11, EdgeX00, EdgeY10, EdgeZ11},
	{EdgeX11, EdgeY10, EdgeZ11, EdgeX11, EdgeY01, EdgeY10, EdgeY01, EdgeY00, EdgeY10},
	{EdgeZ11, EdgeX11, EdgeY11, EdgeX10, EdgeY00, EdgeZ01},
	{EdgeX10, EdgeX00, EdgeZ00, EdgeX10, EdgeZ00, EdgeZ01, EdgeX11, EdgeY11, EdgeZ11},
	{EdgeZ10, EdgeX00, EdgeY10, EdgeZ11, EdgeX11, EdgeY11, EdgeY00, EdgeZ01, EdgeX10},
	{EdgeY11, EdgeZ11, EdgeX11, EdgeZ10, EdgeZ01, EdgeY10, EdgeZ10, EdgeZ00, EdgeZ01, EdgeZ01, EdgeX10, EdgeY10},
	{EdgeX11, EdgeX01, EdgeZ10, EdgeX11, EdgeZ10, EdgeZ11, EdgeX10, EdgeY00, EdgeZ01},
	{EdgeZ10, EdgeZ11, EdgeX01, EdgeZ11, EdgeX11, EdgeX01, EdgeZ00, EdgeX10, EdgeX00, EdgeZ00, EdgeZ01, EdgeX10},
	{EdgeY00, EdgeZ01, EdgeX10, EdgeY10, EdgeZ11, EdgeX00, EdgeX00, EdgeZ11, EdgeX11, EdgeX00, EdgeX11, EdgeX01},
	{EdgeZ01, EdgeY10, EdgeZ00, EdgeZ01, EdgeX10, EdgeY10, EdgeZ00, EdgeY10, EdgeX01, EdgeZ11, EdgeX11, EdgeY10, EdgeX01, EdgeY10, EdgeX11},
	{EdgeZ00, EdgeX01, EdgeY01, EdgeZ01, EdgeX10, EdgeY00, EdgeY11, EdgeZ11, EdgeX11},
	{EdgeZ11, EdgeX11, EdgeY11, EdgeX10, EdgeX01, EdgeZ01, EdgeX10, EdgeX00, EdgeX01, EdgeX01, EdgeY01, EdgeZ01},
	{EdgeX00, EdgeY10, EdgeZ10, EdgeX10, EdgeY00, EdgeZ01, EdgeX01, EdgeY01, EdgeZ00, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeY10, EdgeZ10, EdgeX01, EdgeY10, EdgeX01, EdgeY01, EdgeY10, EdgeY01, EdgeX10, EdgeZ01, EdgeX10, EdgeY01, EdgeZ11, EdgeX11, EdgeY11},
	{EdgeY00, EdgeZ01, EdgeX10, EdgeZ00, EdgeZ11, EdgeY01, EdgeZ00, EdgeZ10, EdgeZ11, EdgeZ11, EdgeX11, EdgeY01},
	{EdgeZ11, EdgeY01, EdgeZ10, EdgeZ11, EdgeX11, EdgeY01, EdgeZ10, EdgeY01, EdgeX00, EdgeZ01, EdgeX10, EdgeY01, EdgeX00, EdgeY01, EdgeX10},
	{EdgeX00, EdgeY10, EdgeZ11, EdgeX00, EdgeZ11, EdgeX11, EdgeX00, EdgeX11, EdgeZ00, EdgeY01, EdgeZ00, EdgeX11, EdgeY00, EdgeZ01, EdgeX10},
	{EdgeX11, EdgeY10, EdgeZ11, EdgeX11, EdgeY01, EdgeY10, EdgeX10, EdgeY10, EdgeZ01, EdgeZ01, EdgeY10, EdgeY01},
	{EdgeY11, EdgeY10, EdgeX10, EdgeX11, EdgeY11, EdgeX10},
	{EdgeX10, EdgeX11, EdgeY11, EdgeX10, EdgeY11, EdgeY10, EdgeX00, EdgeZ00, EdgeY00},
	{EdgeY11, EdgeZ10, EdgeX00, EdgeY11, EdgeX00, EdgeX11, EdgeX11, EdgeX00, EdgeX10},
	{EdgeY00, EdgeZ10, EdgeZ00, EdgeY00, EdgeX11, EdgeZ10, EdgeY00, EdgeX10, EdgeX11, EdgeX11, EdgeY11, EdgeZ10},
	{EdgeZ10, EdgeY10, EdgeX10, EdgeZ10, EdgeX10, EdgeX01, EdgeX01, EdgeX10, EdgeX11},
	{EdgeZ00, EdgeY00, EdgeX00, EdgeZ10, EdgeY10, EdgeX01, EdgeX01, EdgeY10, EdgeX10, EdgeX01, EdgeX10, EdgeX11},
	{EdgeX00, EdgeX10, EdgeX01, EdgeX10, EdgeX11, EdgeX01},
	{EdgeY00, EdgeX01, EdgeZ00, EdgeY00, EdgeX10, EdgeX01, EdgeX10, EdgeX11, EdgeX01},
	{EdgeY11, EdgeY10, EdgeX10, EdgeY11, EdgeX10, EdgeX11, EdgeY01, EdgeZ00, EdgeX01},
	{EdgeX00, EdgeX01, EdgeY00, EdgeX01, EdgeY01, EdgeY00, EdgeX10, EdgeY11, EdgeY10, EdgeX10, EdgeX11, EdgeY11},
	{EdgeZ00, EdgeX01, EdgeY01, EdgeX00, EdgeX11, EdgeZ10, EdgeX00, EdgeX10, EdgeX11, EdgeX11, EdgeY11, EdgeZ10},
	{EdgeX11, EdgeZ10, EdgeX10, EdgeX11, EdgeY11, EdgeZ10, EdgeX10, EdgeZ10, EdgeY00, EdgeX01, EdgeY01, EdgeZ10, EdgeY00, EdgeZ10, EdgeY01},
	{EdgeY10, EdgeX10, EdgeX11, EdgeY10, EdgeX11, EdgeZ00, EdgeY10, EdgeZ00, EdgeZ10, EdgeY01, EdgeZ00, EdgeX11},
	{EdgeY00, EdgeZ10, EdgeY01, EdgeY00, EdgeX00, EdgeZ10, EdgeY01, EdgeZ10, EdgeX11, EdgeY10, EdgeX10, EdgeZ10, EdgeX11, EdgeZ10, EdgeX10},
	{EdgeZ00, EdgeX11, EdgeY01, EdgeZ00, EdgeX00, EdgeX11, EdgeX00, EdgeX10, EdgeX11},
	{EdgeX11, EdgeY00, EdgeX10, EdgeY01, EdgeY00, EdgeX11},
	{EdgeZ01, EdgeX11, EdgeY11, EdgeZ01, EdgeY11, EdgeY00, EdgeY00, EdgeY11, EdgeY10},
	{EdgeX00, EdgeZ00, EdgeZ01, EdgeX00, EdgeZ01, EdgeY11, EdgeX00, EdgeY11, EdgeY10, EdgeX11, EdgeY11, EdgeZ01},
	{EdgeY11, EdgeZ01, EdgeX11, EdgeZ10, EdgeZ01, EdgeY11, EdgeZ10, EdgeY00, EdgeZ01, EdgeZ10, EdgeX00, EdgeY00},
	{EdgeY11, EdgeZ01, EdgeX11, EdgeY11, EdgeZ10, EdgeZ01, EdgeZ10, EdgeZ00, EdgeZ01},
	{EdgeZ10, EdgeX11, EdgeX01, EdgeZ10, EdgeY00, EdgeX11, EdgeZ10, EdgeY10, EdgeY00, EdgeY00, EdgeZ01, EdgeX11},
	{EdgeX01, EdgeY10, EdgeX11, EdgeX01, EdgeZ10, EdgeY10, EdgeX11, EdgeY10, EdgeZ01, EdgeX00, EdgeZ00, EdgeY10, EdgeZ01, EdgeY10, EdgeZ00},
	{EdgeZ01, EdgeX00, EdgeY00, EdgeZ01, EdgeX11, EdgeX00, EdgeX11, EdgeX01, EdgeX00},
	{EdgeZ01, EdgeX01, EdgeZ00, EdgeX11, EdgeX01, EdgeZ01},
	{EdgeX01, EdgeY01, EdgeZ00, EdgeY11, EdgeY00, EdgeX11, EdgeY11, EdgeY10, EdgeY00, EdgeY00, EdgeZ01, EdgeX11},
	{EdgeX01, EdgeZ01, EdgeX00, EdgeX01, EdgeY01, EdgeZ01, EdgeX00, EdgeZ01, EdgeY10, EdgeX11, EdgeY11, EdgeZ01, EdgeY10, EdgeZ01, EdgeY11},
	{EdgeZ10, EdgeX00, EdgeY00, EdgeZ10, EdgeY00, EdgeZ01, EdgeZ10, EdgeZ01, EdgeY11, EdgeX11, EdgeY11, EdgeZ01, EdgeX01, EdgeY01, EdgeZ00},
	{EdgeY01, EdgeZ10, EdgeX01, EdgeY01, EdgeZ01, EdgeZ10, EdgeY11, EdgeZ10, EdgeX11, EdgeX11, EdgeZ10, EdgeZ01},
	{EdgeY00, EdgeX11, EdgeY10, EdgeY00, EdgeZ01, EdgeX11, EdgeY10, EdgeX11, EdgeZ10, EdgeY01, EdgeZ00, EdgeX11, EdgeZ10, EdgeX11, EdgeZ00},
	{EdgeX00, EdgeZ10, EdgeY10, EdgeY01, EdgeZ01, EdgeX11},
	{EdgeZ01, EdgeX00, EdgeY00, EdgeZ01, EdgeX11, EdgeX00, EdgeZ00, EdgeX00, EdgeY01, EdgeY01, EdgeX00, EdgeX11},
	{EdgeZ01, EdgeX11, EdgeY01},
	{EdgeZ01, EdgeY01, EdgeX11},
	{EdgeZ00, EdgeY00, EdgeX00, EdgeY01, EdgeX11, EdgeZ01},
	{EdgeX00, EdgeY10, EdgeZ10, EdgeY01, EdgeX11, EdgeZ01},
	{EdgeY00, EdgeY10, EdgeZ10, EdgeY00, EdgeZ10, EdgeZ00, EdgeY01, EdgeX11, EdgeZ01},
	{EdgeY11, EdgeX01, EdgeZ10, EdgeX11, EdgeZ01, EdgeY01},
	{EdgeZ10, EdgeY11, EdgeX01, EdgeZ00, EdgeY00, EdgeX00, EdgeX11, EdgeZ01, EdgeY01},
	{EdgeX01, EdgeX00, EdgeY10, EdgeX01, EdgeY10, EdgeY11, EdgeX11, EdgeZ01, EdgeY01},
	{EdgeX11, EdgeZ01, EdgeY01, EdgeX01, EdgeZ00, EdgeY11, EdgeY11, EdgeZ00, EdgeY00, EdgeY11, EdgeY00, EdgeY10},
	{EdgeZ01, EdgeZ00, EdgeX01, EdgeX11, EdgeZ01, EdgeX01},
	{EdgeZ01, EdgeY00, EdgeX00, EdgeZ01, EdgeX00, EdgeX11, EdgeX11, EdgeX00, EdgeX01},
	{EdgeX01, EdgeX11, EdgeZ01, EdgeX01, EdgeZ01, EdgeZ00, EdgeX00, EdgeY10, EdgeZ10},
	{EdgeZ10, EdgeX01, EdgeX11, EdgeZ10, EdgeX11, EdgeY00, EdgeZ10, EdgeY00, EdgeY10, EdgeY00, EdgeX11, EdgeZ01},
	{EdgeY11, EdgeX11, EdgeZ01, EdgeY11, EdgeZ01, EdgeZ10, EdgeZ10, EdgeZ01, EdgeZ00},
	{EdgeY11, EdgeX11, EdgeZ01, EdgeZ10, EdgeY11, EdgeZ01, EdgeZ10, EdgeZ01, EdgeY00, EdgeZ10, EdgeY00, EdgeX00},
	{EdgeX00, EdgeZ01, EdgeZ00, EdgeX00, EdgeY11, EdgeZ01, EdgeX00, EdgeY10, EdgeY11, EdgeX11, EdgeZ01, EdgeY11},
	{EdgeZ01, EdgeY11, EdgeX11, EdgeZ01, EdgeY00, EdgeY11, EdgeY00, EdgeY10, EdgeY11},
	{EdgeX11, EdgeX10, EdgeY00, EdgeY01, EdgeX11, EdgeY00},
	{EdgeZ00, EdgeY01, EdgeX11, EdgeZ00, EdgeX11, EdgeX00, EdgeX00, EdgeX11, EdgeX10},
	{EdgeY00, EdgeY01, EdgeX11, EdgeY00, EdgeX11, EdgeX10, EdgeY10, EdgeZ10, EdgeX00},
	{EdgeY10, EdgeX11, EdgeX10, EdgeY10, EdgeZ00, EdgeX11, EdgeY10, EdgeZ10, EdgeZ00, EdgeY01, EdgeX11, EdgeZ00},
	{EdgeX11, EdgeX10, EdgeY00, EdgeX11, EdgeY00, EdgeY01, EdgeX01, EdgeZ10, EdgeY11},
	{EdgeZ10, EdgeY11, EdgeX01, EdgeZ00, EdgeY01, EdgeX00, EdgeX00, EdgeY01, EdgeX11, EdgeX00, EdgeX11, EdgeX10},
	{EdgeX10, EdgeY00, EdgeY01, EdgeX10, EdgeY01, EdgeX11, EdgeX00, EdgeY10, EdgeX01, EdgeX01, EdgeY10, EdgeY11},
	{EdgeY11, EdgeZ00, EdgeY10, EdgeY11, EdgeX01, EdgeZ00, EdgeY10, EdgeZ00, EdgeX10, EdgeY01, EdgeX11, EdgeZ00, EdgeX10, EdgeZ00, EdgeX11},
	{EdgeY00, EdgeZ00, EdgeX01, EdgeY00, EdgeX01, EdgeX10, EdgeX10, EdgeX01, EdgeX11},
	{EdgeX00, EdgeX01, EdgeX10, EdgeX10, EdgeX01, EdgeX11},
	{EdgeZ10, EdgeX00, EdgeY10, EdgeX01, EdgeX10, EdgeZ00, EdgeX01, EdgeX11, EdgeX10, EdgeX10, EdgeY00, EdgeZ00},
	{EdgeZ10, EdgeX10, EdgeY10, EdgeZ10, EdgeX01, EdgeX10, EdgeX01, EdgeX11, EdgeX10},
	{EdgeY00, EdgeZ00, EdgeZ10, EdgeY00, EdgeZ10, EdgeX11, EdgeY00, EdgeX11, EdgeX10, EdgeX11, EdgeZ10, EdgeY11},
	{EdgeY11, EdgeX00, EdgeZ10, EdgeY11, EdgeX11, EdgeX00, EdgeX11, EdgeX10, EdgeX00},
	{EdgeX10, EdgeZ00, EdgeX11, EdgeX10, EdgeY00, EdgeZ00, EdgeX11, EdgeZ00, EdgeY11, EdgeX00, EdgeY10, EdgeZ00, EdgeY11, EdgeZ00, EdgeY10},
	{EdgeY11, EdgeX10, EdgeY10, EdgeX11, EdgeX10, EdgeY11},
	{EdgeX10, EdgeZ11, EdgeY10, EdgeZ01, EdgeY01, EdgeX11},
	{EdgeX00, EdgeZ00, EdgeY00, EdgeX10, EdgeZ11, EdgeY10, EdgeY01, EdgeX11, EdgeZ01},
	{EdgeZ11, EdgeZ10, EdgeX00, EdgeZ11, EdgeX00, EdgeX10, EdgeZ01, EdgeY01, EdgeX11},
	{EdgeY01, EdgeX11, EdgeZ01, EdgeY00, EdgeX10, EdgeZ00, EdgeZ00, EdgeX10, EdgeZ11, EdgeZ00, EdgeZ11, EdgeZ10},
	{EdgeY10, EdgeX10, EdgeZ11, EdgeY11, EdgeX01, EdgeZ10, EdgeZ01, EdgeY01, EdgeX11},
	{EdgeX11, EdgeZ01, EdgeY01, EdgeZ10, EdgeY11, EdgeX01, EdgeX00, EdgeZ00, EdgeY00, EdgeX10, EdgeZ11, EdgeY10},
	{EdgeZ01, EdgeY01, EdgeX11, EdgeZ11, EdgeY11, EdgeX10, EdgeX10, EdgeY11, EdgeX01, EdgeX10, EdgeX01, EdgeX00},
	{EdgeZ00, EdgeY00, EdgeX10, EdgeZ00, EdgeX10, EdgeZ11, EdgeZ00, EdgeZ11, EdgeX01, EdgeY11, EdgeX01, EdgeZ11, EdgeY01, EdgeX11, EdgeZ01},
	{EdgeZ01, EdgeZ00, EdgeX01, EdgeZ01, EdgeX01, EdgeX11, EdgeZ11, EdgeY10, EdgeX10},
	{EdgeY10, EdgeX10, EdgeZ11, EdgeX00, EdgeX11, EdgeY00, EdgeX00, EdgeX01, EdgeX11, EdgeX11, EdgeZ01, EdgeY00},
	{EdgeZ00, EdgeX01, EdgeX11, EdgeZ00, EdgeX11, EdgeZ01, EdgeZ10, EdgeX00, EdgeZ11, EdgeZ11, EdgeX00, EdgeX10},
	{EdgeX11, EdgeY00, EdgeX01, EdgeX11, EdgeZ01, EdgeY00, EdgeX01, EdgeY00, EdgeZ10, EdgeX10, EdgeZ11, EdgeY00, EdgeZ10, EdgeY00, EdgeZ11},
	{EdgeY10, EdgeX10, EdgeZ11, EdgeY11, EdgeX11, EdgeZ10, EdgeZ10, EdgeX11, EdgeZ01, EdgeZ10, EdgeZ01, EdgeZ00},
	{EdgeZ10, EdgeY11, EdgeX11, EdgeZ10, EdgeX11, EdgeZ01, EdgeZ10, EdgeZ01, EdgeX00, EdgeY00, EdgeX00, EdgeZ01, EdgeY10, EdgeX10, EdgeZ11},
	{EdgeX10, EdgeY11, EdgeX00, EdgeX10, EdgeZ11, EdgeY11, EdgeX00, EdgeY11, EdgeZ00, EdgeX11, EdgeZ01, EdgeY11, EdgeZ00, EdgeY11, EdgeZ01},
	{EdgeZ01, EdgeY11, EdgeX11, EdgeZ01, EdgeY00, EdgeY11, EdgeZ11, EdgeY11, EdgeX10, EdgeX10, EdgeY11, EdgeY00},
	{EdgeX11, EdgeZ11, EdgeY10, EdgeX11, EdgeY10, EdgeY01, EdgeY01, EdgeY10, EdgeY00},
	{EdgeZ00, EdgeY01, EdgeX11, EdgeX00, EdgeZ00, EdgeX11, EdgeX00, EdgeX11, EdgeZ11, EdgeX00, EdgeZ11, EdgeY10},
	{EdgeX00, EdgeY00, EdgeY01, EdgeX00, EdgeY01, EdgeZ11, EdgeX00, EdgeZ11, EdgeZ10, EdgeZ11, EdgeY01, EdgeX11},
	{EdgeX11, EdgeZ00, EdgeY01, EdgeX11, EdgeZ11, EdgeZ00, EdgeZ11, EdgeZ10, EdgeZ00},
	{EdgeZ10, EdgeY11, EdgeX01, EdgeY10, EdgeY01, EdgeZ11, EdgeY10, EdgeY00, EdgeY01, EdgeY01, EdgeX11, EdgeZ11},
	{EdgeX00, EdgeZ00, EdgeY01, EdgeX00, EdgeY01, EdgeX11, EdgeX00, EdgeX11, EdgeY10, EdgeZ11, EdgeY10, EdgeX11, EdgeZ10, EdgeY11, EdgeX01},
	{EdgeY01, EdgeZ11, EdgeY00, EdgeY01, EdgeX11, EdgeZ11, EdgeY00, EdgeZ11, EdgeX00, EdgeY11, EdgeX01, EdgeZ11, EdgeX00, EdgeZ11, EdgeX01},
	{EdgeX11, EdgeZ00, EdgeY01, EdgeX11, EdgeZ11, EdgeZ00, EdgeX01, EdgeZ00, EdgeY11, EdgeY11, EdgeZ00, EdgeZ11},
	{EdgeZ11, EdgeY10, EdgeY00, EdgeZ11, EdgeY00, EdgeX01, EdgeZ11, EdgeX01, EdgeX11, EdgeZ00, EdgeX01, EdgeY00},
	{EdgeY10, EdgeX11, EdgeZ11, EdgeY10, EdgeX00, EdgeX11, EdgeX00, EdgeX01, EdgeX11},
	{EdgeZ10, EdgeY00, EdgeZ11, EdgeZ10, EdgeX00, EdgeY00, EdgeZ11, EdgeY00, EdgeX11, EdgeZ00, EdgeX01, EdgeY00, EdgeX11, EdgeY00, EdgeX01},
	{EdgeZ10, EdgeX11, EdgeZ11, EdgeX01, EdgeX11, EdgeZ10},
	{EdgeZ10, EdgeX11, EdgeZ00, EdgeZ10, EdgeY11, EdgeX11, EdgeZ00, EdgeX11, EdgeY00, EdgeZ11, EdgeY10, EdgeX11, EdgeY00, EdgeX11, EdgeY10},
	{EdgeY11, EdgeX00, EdgeZ10, EdgeY11, EdgeX11, EdgeX00, EdgeY10, EdgeX00, EdgeZ11, EdgeZ11, EdgeX00, EdgeX11},
	{EdgeX00, EdgeY00, EdgeZ00, EdgeZ11, EdgeY11, EdgeX11},
	{EdgeY11, EdgeX11, EdgeZ11},
	{EdgeY01, EdgeY11, EdgeZ11, EdgeZ01, EdgeY01, EdgeZ11},
	{EdgeY01, EdgeY11, EdgeZ11, EdgeY01, EdgeZ11, EdgeZ01, EdgeY00, EdgeX00, EdgeZ00},
	{EdgeZ11, EdgeZ01, EdgeY01, EdgeZ11, EdgeY01, EdgeY11, EdgeZ10, EdgeX00, EdgeY10},
	{EdgeY11, EdgeZ11, EdgeZ01, EdgeY11, EdgeZ01, EdgeY01, EdgeY10, EdgeZ10, EdgeY00, EdgeY00, EdgeZ10, EdgeZ00},
	{EdgeY01, EdgeX01, EdgeZ10, EdgeY01, EdgeZ10, EdgeZ01, EdgeZ01, EdgeZ10, EdgeZ11},
	{EdgeX00, EdgeZ00, EdgeY00, EdgeZ10, EdgeZ01, EdgeX01, EdgeZ10, EdgeZ11, EdgeZ01, EdgeZ01, EdgeY01, EdgeX01},
	{EdgeY10, EdgeZ11, EdgeZ01, EdgeY10, EdgeZ01, EdgeX01, EdgeY10, EdgeX01, EdgeX00, EdgeX01, EdgeZ01, EdgeY01},
	{EdgeZ01, EdgeX01, EdgeZ11, EdgeZ01, EdgeY01, EdgeX01, EdgeZ11, EdgeX01, EdgeY10, EdgeZ00, EdgeY00, EdgeX01, EdgeY10, EdgeX01, EdgeY00},
	{EdgeX01, EdgeY11, EdgeZ11, EdgeX01, EdgeZ11, EdgeZ00, EdgeZ00, EdgeZ11, EdgeZ01},
	{EdgeY00, EdgeX00, EdgeX01, EdgeY00, EdgeX01, EdgeZ11, EdgeY00, EdgeZ11, EdgeZ01, EdgeY11, EdgeZ11, EdgeX01},
	{EdgeY10, EdgeZ10, EdgeX00, EdgeZ11, EdgeZ00, EdgeY11, EdgeZ11, EdgeZ01, EdgeZ00, EdgeZ00, EdgeX01, EdgeY11},
	{EdgeY10, EdgeX01, EdgeY00, EdgeY10, EdgeZ10, EdgeX01, EdgeY00, EdgeX01, EdgeZ01, EdgeY11, EdgeZ11, EdgeX01, EdgeZ01, EdgeX01, EdgeZ11},
	{EdgeZ10, EdgeZ11, EdgeZ00, EdgeZ00, EdgeZ11, EdgeZ01},
	{EdgeX00, EdgeZ01, EdgeY00, EdgeX00, EdgeZ10, EdgeZ01, EdgeZ10, EdgeZ11, EdgeZ01},
	{EdgeY10, EdgeZ00, EdgeX00, EdgeY10, EdgeZ11, EdgeZ00, EdgeZ11, EdgeZ01, EdgeZ00},
	{EdgeY10, EdgeZ01, EdgeY00, EdgeZ11, EdgeZ01, EdgeY10},
	{EdgeZ11, EdgeX10, EdgeY00, EdgeZ11, EdgeY00, EdgeY11, EdgeY11, EdgeY00, EdgeY01},
	{EdgeZ11, EdgeX10, EdgeX00, EdgeZ11, EdgeX00, EdgeY01, EdgeZ11, EdgeY01, EdgeY11, EdgeY01, EdgeX00, EdgeZ00},
	{EdgeX00, EdgeY10, EdgeZ10, EdgeY00, EdgeY11, EdgeX10, EdgeY00, EdgeY01, EdgeY11, EdgeY11, EdgeZ11, EdgeX10},
	{EdgeY11, EdgeX10, EdgeY01, EdgeY11, EdgeZ11, EdgeX10, EdgeY01, EdgeX10, EdgeZ00, EdgeY10, EdgeZ10, EdgeX10, EdgeZ00, EdgeX10, EdgeZ10},
	{EdgeX01, EdgeZ10, EdgeZ11, EdgeX01, EdgeZ11, EdgeY00, EdgeX01, EdgeY00, EdgeY01, EdgeX10, EdgeY00, EdgeZ11},
	{EdgeX00, EdgeY01, EdgeX10, EdgeX00, EdgeZ00, EdgeY01, EdgeX10, EdgeY01, EdgeZ11, EdgeX01, EdgeZ10, EdgeY01, EdgeZ11, EdgeY01, EdgeZ10},
	{EdgeX00, EdgeZ11, EdgeX01, EdgeX00, EdgeY10, EdgeZ11, EdgeX01, EdgeZ11, EdgeY01, EdgeX10, EdgeY00, EdgeZ11, EdgeY01, EdgeZ11, EdgeY00},
	{EdgeY10, EdgeZ11, EdgeX10, EdgeX01, EdgeZ00, EdgeY01},
	{EdgeX01, EdgeY11, EdgeZ11, EdgeZ00, EdgeX01, EdgeZ11, EdgeZ00, EdgeZ11, EdgeX10, EdgeZ00, EdgeX10, EdgeY00},
	{EdgeZ11, EdgeX01, EdgeY11, EdgeZ11, EdgeX10, EdgeX01, EdgeX10, EdgeX00, EdgeX01},
	{EdgeZ00, EdgeX01, EdgeY11, EdgeZ00, EdgeY11, EdgeZ11, EdgeZ00, EdgeZ11, EdgeY00, EdgeX10, EdgeY00, EdgeZ11, EdgeX00, EdgeY10, EdgeZ10},
	{EdgeZ11, EdgeX01, EdgeY11, EdgeZ11, EdgeX10, EdgeX01, EdgeZ10, EdgeX01, EdgeY10, EdgeY10, EdgeX01, EdgeX10},
	{EdgeY00, EdgeZ11, EdgeX10, EdgeY00, EdgeZ00, EdgeZ11, EdgeZ00, EdgeZ10, EdgeZ11},
	{EdgeX00, EdgeZ11, EdgeX10, EdgeZ10, EdgeZ11, EdgeX00},
	{EdgeY00, EdgeZ11, EdgeX10, EdgeY00, EdgeZ00, EdgeZ11, EdgeY10, EdgeZ11, EdgeX00, EdgeX00, EdgeZ11, EdgeZ00},
	{EdgeY10, EdgeZ11, EdgeX10},
	{EdgeX10, EdgeZ01, EdgeY01, EdgeX10, EdgeY01, EdgeY10, EdgeY10, EdgeY01, EdgeY11},
	{EdgeX00, EdgeZ00, EdgeY00, EdgeX10, EdgeZ01, EdgeY10, EdgeY10, EdgeZ01, EdgeY01, EdgeY10, EdgeY01, EdgeY11},
	{EdgeZ10, EdgeY01, EdgeY11, EdgeZ10, EdgeX10, EdgeY01, EdgeZ10, EdgeX00, EdgeX10, EdgeZ01, EdgeY01, EdgeX10},
	{EdgeZ00, EdgeX10, EdgeZ10, EdgeZ00, EdgeY00, EdgeX10, EdgeZ10, EdgeX10, EdgeY11, EdgeZ01, EdgeY01, EdgeX10, EdgeY11, EdgeX10, EdgeY01},
	{EdgeX10, EdgeZ01, EdgeY01, EdgeY10, EdgeX10, EdgeY01, EdgeY10, EdgeY01, EdgeX01, EdgeY10, EdgeX01, EdgeZ10},
	{EdgeY10, EdgeX10, EdgeZ01, EdgeY10, EdgeZ01, EdgeY01, EdgeY10, EdgeY01, EdgeZ10, EdgeX01, EdgeZ10, EdgeY01, EdgeX00, EdgeZ00, EdgeY00},
	{EdgeY01, EdgeX10, EdgeZ01, EdgeY01, EdgeX01, EdgeX10, EdgeX01, EdgeX00, EdgeX10},
	{EdgeY01, EdgeX10, EdgeZ01, EdgeY01, EdgeX01, EdgeX10, EdgeY00, EdgeX10, EdgeZ00, EdgeZ00, EdgeX10, EdgeX01},
	{EdgeX01, EdgeY11, EdgeY10, EdgeX01, EdgeY10, EdgeZ01, EdgeX01, EdgeZ01, EdgeZ00, EdgeZ01, EdgeY10, EdgeX10},
	{EdgeY10, EdgeZ01, EdgeY11, EdgeY10, EdgeX10, EdgeZ01, EdgeY11, EdgeZ01, EdgeX01, EdgeY00, EdgeX00, EdgeZ01, EdgeX01, EdgeZ01, EdgeX00},
	{EdgeZ00, EdgeY11, EdgeZ01, EdgeZ00, EdgeX01, EdgeY11, EdgeZ01, EdgeY11, EdgeX10, EdgeZ10, EdgeX00, EdgeY11, EdgeX10, EdgeY11, EdgeX00},
	{EdgeZ10, EdgeX01, EdgeY11, EdgeY00, EdgeX10, EdgeZ01},
	{EdgeX10, EdgeZ10, EdgeY10, EdgeX10, EdgeZ01, EdgeZ10, EdgeZ01, EdgeZ00, EdgeZ10},
	{EdgeX10, EdgeZ10, EdgeY10, EdgeX10, EdgeZ01, EdgeZ10, EdgeX00, EdgeZ10, EdgeY00, EdgeY00, EdgeZ10, EdgeZ01},
	{EdgeX10, EdgeZ00, EdgeX00, EdgeZ01, EdgeZ00, EdgeX10},
	{EdgeX10, EdgeZ01, EdgeY00},
	{EdgeY10, EdgeY00, EdgeY11, EdgeY11, EdgeY00, EdgeY01},
	{EdgeZ00, EdgeY10, EdgeX00, EdgeZ00, EdgeY01, EdgeY10, EdgeY01, EdgeY11, EdgeY10},
	{EdgeX00, EdgeY11, EdgeZ10, EdgeX00, EdgeY00, EdgeY11, EdgeY00, EdgeY01, EdgeY11},
	{EdgeZ00, EdgeY11, EdgeZ10, EdgeY01, EdgeY11, EdgeZ00},
	{EdgeZ10, EdgeY01, EdgeX01, EdgeZ10, EdgeY10, EdgeY01, EdgeY10, EdgeY00, EdgeY01},
	{EdgeZ00, EdgeY10, EdgeX00, EdgeZ00, EdgeY01, EdgeY10, EdgeZ10, EdgeY10, EdgeX01, EdgeX01, EdgeY10, EdgeY01},
	{EdgeX00, EdgeY01, EdgeX01, EdgeY00, EdgeY01, EdgeX00},
	{EdgeZ00, EdgeY01, EdgeX01},
	{EdgeX01, EdgeY00, EdgeZ00, EdgeX01, EdgeY11, EdgeY00, EdgeY11, EdgeY10, EdgeY00},
	{EdgeY10, EdgeX01, EdgeY11, EdgeX00, EdgeX01, EdgeY10},
	{EdgeX01, EdgeY00, EdgeZ00, EdgeX01, EdgeY11, EdgeY00, EdgeX00, EdgeY00, EdgeZ10, EdgeZ10, EdgeY00, EdgeY11},
	{EdgeZ10, EdgeX01, EdgeY11},
	{EdgeZ10, EdgeY00, EdgeZ00, EdgeY10, EdgeY00, EdgeZ10},
	{EdgeX00, EdgeZ10, EdgeY10},
	{EdgeX00, EdgeY00, EdgeZ00},
	{},
}

// EdgesFor returns the triangle edge list for a cube mask. The length is
// always a multiple of 3. The returned slice is shared and must not be
// modified.
func EdgesFor(mask uint8) []Edge {
	return shapes[mask]
}
