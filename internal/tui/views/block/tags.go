package block

import (
    "codetool/internal/tui/util"
    chips "codetool/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for a block header.
func RenderTags(s util.BlockStatus, noColor bool) string {
    return chips.View(util.ComputeTags(s), noColor)
}
