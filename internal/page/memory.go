package page

import (
	"sort"
	"sync"
)

type region struct {
	name     string
	position string
	elements []Element
}

type memoryDocument struct {
	mu       sync.RWMutex
	regions  map[string]*region
	order    []string
	index    map[string]string // element id -> region name
	projects map[string]*ProgressView
}

// NewMemory creates an in-process Document rendering the given regions.
func NewMemory(regions ...string) Document {
	d := &memoryDocument{
		regions:  make(map[string]*region),
		index:    make(map[string]string),
		projects: make(map[string]*ProgressView),
	}
	for _, name := range regions {
		d.addRegionLocked(name, "")
	}
	return d
}

func (d *memoryDocument) addRegionLocked(name, position string) bool {
	if name == "" {
		return false
	}
	if _, ok := d.regions[name]; ok {
		return false
	}
	d.regions[name] = &region{name: name, position: position}
	d.order = append(d.order, name)
	return true
}

func (d *memoryDocument) HasRegion(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.regions[name]
	return ok
}

func (d *memoryDocument) EnsureRegion(name, position string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addRegionLocked(name, position)
}

func (d *memoryDocument) insert(regionName string, el Element, first bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.regions[regionName]
	if !ok {
		return ErrRegionNotFound
	}
	if _, dup := d.index[el.ID]; dup {
		return ErrDuplicateElement
	}

	if first {
		r.elements = append([]Element{el}, r.elements...)
	} else {
		r.elements = append(r.elements, el)
	}
	d.index[el.ID] = regionName
	return nil
}

func (d *memoryDocument) Prepend(regionName string, el Element) error {
	return d.insert(regionName, el, true)
}

func (d *memoryDocument) Append(regionName string, el Element) error {
	return d.insert(regionName, el, false)
}

func (d *memoryDocument) Remove(elementID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	regionName, ok := d.index[elementID]
	if !ok {
		return false
	}
	delete(d.index, elementID)

	r := d.regions[regionName]
	for i, el := range r.elements {
		if el.ID == elementID {
			r.elements = append(r.elements[:i], r.elements[i+1:]...)
			break
		}
	}
	return true
}

func (d *memoryDocument) Element(elementID string) (Element, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	regionName, ok := d.index[elementID]
	if !ok {
		return Element{}, false
	}
	for _, el := range d.regions[regionName].elements {
		if el.ID == elementID {
			return el, true
		}
	}
	return Element{}, false
}

func (d *memoryDocument) AddProject(projectID string, withBar bool) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.projects[projectID]; ok {
		return false
	}
	d.projects[projectID] = &ProgressView{ProjectID: projectID, HasBar: withBar}
	return true
}

func (d *memoryDocument) RemoveProject(projectID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.projects[projectID]; !ok {
		return false
	}
	delete(d.projects, projectID)
	return true
}

func (d *memoryDocument) ProjectIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.projects))
	for id := range d.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (d *memoryDocument) Progress(projectID string) (ProgressView, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.projects[projectID]
	if !ok {
		return ProgressView{}, false
	}
	return *p, true
}

func (d *memoryDocument) SetProgress(projectID, width, label string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.projects[projectID]
	if !ok || !p.HasBar {
		return false
	}
	p.Width = width
	p.Label = label
	return true
}

func (d *memoryDocument) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snap := Snapshot{
		Regions:  make([]RegionSnapshot, 0, len(d.order)),
		Projects: make([]ProgressView, 0, len(d.projects)),
	}
	for _, name := range d.order {
		r := d.regions[name]
		els := make([]Element, len(r.elements))
		copy(els, r.elements)
		snap.Regions = append(snap.Regions, RegionSnapshot{Name: r.name, Position: r.position, Elements: els})
	}
	for _, p := range d.projects {
		snap.Projects = append(snap.Projects, *p)
	}
	sort.Slice(snap.Projects, func(i, j int) bool {
		return snap.Projects[i].ProjectID < snap.Projects[j].ProjectID
	})
	return snap
}
