package debugui

import (
	"fmt"
	"sort"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinfall/ecs"
)

// ArchetypeViewer tables every archetype with a bar scaled to its entity
// count, plus the singleton types.
type ArchetypeViewer struct {
	sortColumn    int
	sortAscending bool
}

func NewArchetypeViewer() *ArchetypeViewer {
	return &ArchetypeViewer{sortColumn: 2}
}

func (av *ArchetypeViewer) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(410, 200), imgui.CondOnce)
	if !imgui.BeginV("Archetypes", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := storage.CollectStats()
	imgui.Text(fmt.Sprintf("%d archetypes, %d entities", stats.ArchetypeCount, stats.TotalEntityCount))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable
	if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			order := sortSpecs.Specs()
			av.sortColumn = int(order.ColumnIndex())
			av.sortAscending = order.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}

		rows := SortArchetypes(stats.ArchetypeBreakdown, av.sortColumn, av.sortAscending)
		maxCount := 0
		for _, row := range rows {
			maxCount = max(maxCount, row.EntityCount)
		}

		for _, row := range rows {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", row.ID))

			imgui.TableNextColumn()
			imgui.Text(row.Label())

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row.EntityCount))
			if maxCount > 0 {
				barWidth := float32(row.EntityCount) / float32(maxCount) * 80
				imgui.SameLine()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				imgui.WindowDrawList().AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	if len(stats.SingletonTypes) > 0 && imgui.TreeNodeStr(fmt.Sprintf("Singletons (%d)", stats.SingletonCount)) {
		for _, name := range stats.SingletonTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// SortArchetypes orders rows in place by id (column 0), component list
// (column 1) or entity count (column 2).
func SortArchetypes(rows []ecs.ArchetypeStats, column int, ascending bool) []ecs.ArchetypeStats {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}
		switch column {
		case 0:
			return a.ID < b.ID
		case 1:
			return a.Label() < b.Label()
		default:
			return a.EntityCount < b.EntityCount
		}
	})
	return rows
}
