package buffers

import (
	"fmt"

	"github.com/usharplibs/engine/assert"
	"github.com/usharplibs/engine/glapi"
)

type BufUsage int

// Full docs for buffer usage can be found here: https://registry.khronos.org/OpenGL-Refpages/gl4/html/glBufferData.xhtml
const (
	BufUsage_Unknown BufUsage = iota

	//Buffer is set only once and used many times
	BufUsage_Static_Draw
	//Buffer is changed a lot and used many times
	BufUsage_Dynamic_Draw
	//Buffer is set only once and used by the GPU at most a few times
	BufUsage_Stream_Draw

	BufUsage_Static_Read
	BufUsage_Dynamic_Read
	BufUsage_Stream_Read

	BufUsage_Static_Copy
	BufUsage_Dynamic_Copy
	BufUsage_Stream_Copy
)

func (b BufUsage) ToGL() uint32 {
	switch b {
	case BufUsage_Static_Draw:
		return glapi.STATIC_DRAW
	case BufUsage_Dynamic_Draw:
		return glapi.DYNAMIC_DRAW
	case BufUsage_Stream_Draw:
		return glapi.STREAM_DRAW

	case BufUsage_Static_Read:
		return glapi.STATIC_READ
	case BufUsage_Dynamic_Read:
		return glapi.DYNAMIC_READ
	case BufUsage_Stream_Read:
		return glapi.STREAM_READ

	case BufUsage_Static_Copy:
		return glapi.STATIC_COPY
	case BufUsage_Dynamic_Copy:
		return glapi.DYNAMIC_COPY
	case BufUsage_Stream_Copy:
		return glapi.STREAM_COPY
	}

	assert.T(false, fmt.Sprintf("Unexpected BufUsage value '%v'", b))
	return 0
}

// ParseBufUsage maps config names like "static_draw" to a BufUsage
func ParseBufUsage(s string) (BufUsage, error) {

	switch s {
	case "static_draw":
		return BufUsage_Static_Draw, nil
	case "dynamic_draw":
		return BufUsage_Dynamic_Draw, nil
	case "stream_draw":
		return BufUsage_Stream_Draw, nil
	case "static_read":
		return BufUsage_Static_Read, nil
	case "dynamic_read":
		return BufUsage_Dynamic_Read, nil
	case "stream_read":
		return BufUsage_Stream_Read, nil
	case "static_copy":
		return BufUsage_Static_Copy, nil
	case "dynamic_copy":
		return BufUsage_Dynamic_Copy, nil
	case "stream_copy":
		return BufUsage_Stream_Copy, nil
	}

	return BufUsage_Unknown, fmt.Errorf("unknown buffer usage '%s'", s)
}
