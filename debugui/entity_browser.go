package debugui

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/coinfall/ecs"
)

// EntityInfo is one row of the entity browser.
type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

// EntityBrowser lists live entities with paging, filtering and sorting,
// and shows the component values of the selected one.
type EntityBrowser struct {
	entities      []EntityInfo
	sortColumn    int
	sortAscending bool

	filterText string
	selected   ecs.EntityId
	hasSelect  bool
	perPage    int
	page       int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{
		sortAscending: true,
		perPage:       perPage,
	}
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 360), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// particles churn every frame, so the rows are rebuilt each time
	eb.entities = SortEntities(EntityRows(storage), eb.sortColumn, eb.sortAscending)

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.page = 0
	}

	filtered := FilterEntities(eb.entities, eb.filterText)
	totalPages := max(1, (len(filtered)+eb.perPage-1)/eb.perPage)
	eb.page = min(eb.page, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 160), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			order := sortSpecs.Specs()
			eb.sortColumn = int(order.ColumnIndex())
			eb.sortAscending = order.SortDirection() == imgui.SortDirectionAscending
			eb.entities = SortEntities(eb.entities, eb.sortColumn, eb.sortAscending)
			filtered = FilterEntities(eb.entities, eb.filterText)
			sortSpecs.SetSpecsDirty(false)
		}

		start := eb.page * eb.perPage
		end := min(start+eb.perPage, len(filtered))
		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			selected := eb.hasSelect && eb.selected == entity.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", entity.ID), selected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
				eb.hasSelect = true
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%X", entity.ArchetypeID))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, totalPages, len(filtered)))
	imgui.SameLine()
	if imgui.Button("Prev") && eb.page > 0 {
		eb.page--
	}
	imgui.SameLine()
	if imgui.Button("Next") && eb.page < totalPages-1 {
		eb.page++
	}

	if eb.hasSelect {
		imgui.Separator()
		values := ComponentValues(storage, eb.selected)
		if values == nil {
			imgui.Text(fmt.Sprintf("Entity %d despawned", eb.selected))
		}
		for _, line := range values {
			imgui.BulletText(line)
		}
	}

	imgui.End()
}

// EntityRows lists every live entity, archetype by archetype.
func EntityRows(storage *ecs.Storage) []EntityInfo {
	rows := make([]EntityInfo, 0, storage.Len())
	for _, archetype := range storage.Archetypes() {
		names := typeNames(archetype.Types())
		for id := range archetype.Iter() {
			rows = append(rows, EntityInfo{
				ID:             id,
				ArchetypeID:    archetype.ID(),
				ComponentTypes: names,
			})
		}
	}
	return rows
}

// SortEntities orders rows in place by entity id (column 0), archetype id
// (column 1) or component list (column 2).
func SortEntities(rows []EntityInfo, column int, ascending bool) []EntityInfo {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !ascending {
			a, b = b, a
		}
		switch column {
		case 1:
			return a.ArchetypeID < b.ArchetypeID
		case 2:
			return strings.Join(a.ComponentTypes, ",") < strings.Join(b.ComponentTypes, ",")
		default:
			return a.ID < b.ID
		}
	})
	return rows
}

// FilterEntities keeps rows whose id, hex archetype id or component names
// contain text, ignoring case.
func FilterEntities(rows []EntityInfo, text string) []EntityInfo {
	if text == "" {
		return rows
	}

	needle := strings.ToLower(text)
	out := make([]EntityInfo, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(fmt.Sprintf("%d", row.ID), needle) ||
			strings.Contains(fmt.Sprintf("0x%x", row.ArchetypeID), needle) ||
			strings.Contains(strings.ToLower(strings.Join(row.ComponentTypes, " ")), needle) {
			out = append(out, row)
		}
	}
	return out
}

// ComponentValues formats each component of a live entity as
// "Type{Field:value ...}". It returns nil once the entity is gone.
func ComponentValues(storage *ecs.Storage, id ecs.EntityId) []string {
	archetype := storage.Archetype(id)
	if archetype == nil {
		return nil
	}

	var lines []string
	for _, t := range archetype.Types() {
		component := storage.Component(id, t)
		if component == nil {
			return nil
		}
		lines = append(lines, fmt.Sprintf("%s%+v", t.Name(), reflect.ValueOf(component).Elem().Interface()))
	}
	return lines
}

func typeNames(types []reflect.Type) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}
