package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/aftermath/ecs"
)

// EntityInfo is one entity browser row.
type EntityInfo struct {
	ID             ecs.EntityID
	Active         bool
	Tags           []string
	ComponentTypes []string
	ComponentCount int
}

// EntityBrowser renders a filterable, paginated table of all live entities.
type EntityBrowser struct {
	selectedEntityID   ecs.EntityID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// NewEntityBrowser creates a browser showing maxEntitiesPerPage rows per page.
func NewEntityBrowser(maxEntitiesPerPage int) *EntityBrowser {
	return &EntityBrowser{maxEntitiesPerPage: maxEntitiesPerPage}
}

// Render draws the Entity Browser window for the world's current population.
func (eb *EntityBrowser) Render(world *ecs.World) {
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	entities := eb.collect(world)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Entity ID")
		imgui.TableSetupColumn("Active")
		imgui.TableSetupColumn("Tags")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Count")
		imgui.TableHeadersRow()

		startIdx := eb.currentPage * eb.maxEntitiesPerPage
		if startIdx >= len(entities) {
			startIdx = 0
			eb.currentPage = 0
		}
		endIdx := startIdx + eb.maxEntitiesPerPage
		if endIdx > len(entities) {
			endIdx = len(entities)
		}

		for i := startIdx; i < endIdx; i++ {
			info := entities[i]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := eb.selectedEntityID == info.ID
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selectedEntityID = info.ID
			}

			imgui.TableNextColumn()
			if info.Active {
				imgui.Text("yes")
			} else {
				imgui.Text("no")
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.Tags, ", "))

			imgui.TableNextColumn()
			imgui.Text(strings.Join(info.ComponentTypes, ", "))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", info.ComponentCount))
		}

		imgui.EndTable()
	}

	if len(entities) > eb.maxEntitiesPerPage {
		totalPages := (len(entities) + eb.maxEntitiesPerPage - 1) / eb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.currentPage+1, totalPages, len(entities)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.currentPage > 0 {
			eb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.currentPage < totalPages-1 {
			eb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(entities)))
	}

	imgui.End()
}

func (eb *EntityBrowser) collect(world *ecs.World) []EntityInfo {
	filterLower := strings.ToLower(eb.filterText)

	infos := make([]EntityInfo, 0, world.EntityCount())
	for _, e := range world.Entities() {
		componentTypes := make([]string, 0, e.ComponentCount())
		for _, t := range e.ComponentTypes() {
			componentTypes = append(componentTypes, t.String())
		}
		sort.Strings(componentTypes)

		tags := make([]string, 0, len(e.Tags()))
		for _, tag := range e.Tags() {
			tags = append(tags, string(tag))
		}
		sort.Strings(tags)

		info := EntityInfo{
			ID:             e.ID(),
			Active:         e.Active(),
			Tags:           tags,
			ComponentTypes: componentTypes,
			ComponentCount: len(componentTypes),
		}

		if filterLower != "" && !matchesFilter(info, filterLower) {
			continue
		}
		infos = append(infos, info)
	}
	return infos
}

func matchesFilter(info EntityInfo, filterLower string) bool {
	idStr := fmt.Sprintf("%d", info.ID)
	tagsStr := strings.ToLower(strings.Join(info.Tags, " "))
	componentsStr := strings.ToLower(strings.Join(info.ComponentTypes, " "))

	return strings.Contains(idStr, filterLower) ||
		strings.Contains(tagsStr, filterLower) ||
		strings.Contains(componentsStr, filterLower)
}
