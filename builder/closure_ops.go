package builder

import (
	"context"

	"github.com/geomodel/brep/entity"
	"golang.org/x/sync/errgroup"
)

// BuildInterfaces groups every Surface by its GeologicalFeature tag into
// an Interface per distinct, non-empty tag, setting each Surface's parent
// to the matching Interface (spec C3's parent/child geological grouping).
// Surfaces with an empty tag are left without a parent.
func (b *Builder) BuildInterfaces() error {
	byFeature := map[string]entity.ID{}
	n := b.Model.NbEntities(entity.Surface)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Surface, Index: uint32(i)}
		surf, err := b.Model.Surface(id)
		if err != nil {
			continue
		}
		feature := surf.GeologicalFeature()
		if feature == "" {
			continue
		}
		ifc, ok := byFeature[feature]
		if !ok {
			ifc = b.Model.CreateEntity(entity.Interface)
			if err := b.Model.SetName(ifc, feature); err != nil {
				return buildErrorf(MethodBuildInterfaces, err)
			}
			byFeature[feature] = ifc
		}
		if err := b.Model.SetParent(id, ifc); err != nil {
			return buildErrorf(MethodBuildInterfaces, err)
		}
	}
	return nil
}

// BuildLayers is BuildInterfaces' counterpart for Regions, grouping them
// into Layers by GeologicalFeature.
func (b *Builder) BuildLayers() error {
	byFeature := map[string]entity.ID{}
	n := b.Model.NbEntities(entity.Region)
	for i := 1; i < n; i++ { // index 0 is the universe; it joins no Layer
		id := entity.ID{Kind: entity.Region, Index: uint32(i)}
		region, err := b.Model.Region(id)
		if err != nil {
			continue
		}
		feature := region.GeologicalFeature()
		if feature == "" {
			continue
		}
		layer, ok := byFeature[feature]
		if !ok {
			layer = b.Model.CreateEntity(entity.Layer)
			if err := b.Model.SetName(layer, feature); err != nil {
				return buildErrorf(MethodBuildLayers, err)
			}
			byFeature[feature] = layer
		}
		if err := b.Model.SetParent(id, layer); err != nil {
			return buildErrorf(MethodBuildLayers, err)
		}
	}
	return nil
}

// BuildContacts must run after BuildInterfaces: for every Line, it derives
// the set of Interfaces incident on the Line (via the parent Interface of
// each Surface that has the Line as a boundary), finds-or-creates the
// matching Contact, and parents the Line to it.
func (b *Builder) BuildContacts() error {
	n := b.Model.NbEntities(entity.Line)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: entity.Line, Index: uint32(i)}
		line, err := b.Model.Line(id)
		if err != nil {
			continue
		}

		seen := map[entity.ID]bool{}
		var interfaces []entity.ID
		for _, surfID := range line.InBoundaries() {
			if surfID.Kind != entity.Surface {
				continue
			}
			surf, err := b.Model.Surface(surfID)
			if err != nil {
				continue
			}
			parent := surf.Parent()
			if parent == entity.NoID || seen[parent] {
				continue
			}
			seen[parent] = true
			interfaces = append(interfaces, parent)
		}
		if len(interfaces) == 0 {
			continue
		}

		contact, err := b.FindOrCreateContact(interfaces)
		if err != nil {
			return buildErrorf(MethodBuildContacts, err)
		}
		if old := line.Parent(); old != entity.NoID && old != contact {
			// SetParent documents that a prior parent link is the caller's
			// responsibility to clear first; BuildContacts is re-run by
			// repair.rebuildContacts on a model that may already have
			// Contacts assigned, so skipping this would leave the Line
			// listed as a stale child of its old Contact.
			if err := b.Model.RemoveChild(old, id); err != nil {
				return buildErrorf(MethodBuildContacts, err)
			}
		}
		if err := b.Model.SetParent(id, contact); err != nil {
			return buildErrorf(MethodBuildContacts, err)
		}
	}
	return nil
}

// EndModel runs the full closure sequence (BuildInterfaces, BuildLayers,
// BuildContacts, in that dependency order) and marks the model finalized.
// It is an error to call EndModel twice.
func (b *Builder) EndModel() error {
	if b.ended {
		return buildErrorf(MethodEndModel, ErrAlreadyEnded)
	}
	if err := b.BuildInterfaces(); err != nil {
		return err
	}
	if err := b.BuildLayers(); err != nil {
		return err
	}
	if err := b.BuildContacts(); err != nil {
		return err
	}
	b.ended = true
	return nil
}

// CopyMacroTopology copies every geological entity (Contact, Interface,
// Layer — the "macro" topology, as opposed to the meshed "micro" topology
// of Corners/Lines/Surfaces/Regions) from b's ended model into dst, which
// must already contain the same mesh entities in the same order and no
// geological entities of its own yet (the typical use is duplicating a
// structural model before running two independent repair/edit passes on
// it): copyGeological creates dst's geological entities by appending in
// src's iteration order, so a fresh dst keeps src and dst geological ids in
// lockstep for the wiring pass below. The three kinds are independent of
// each other, so they are copied concurrently via errgroup, matching the
// teacher corpus's bounded-fan-out idiom for independent, side-effect-
// isolated units of work.
func (b *Builder) CopyMacroTopology(dst *Builder) error {
	if !b.ended {
		return buildErrorf(MethodCopyMacroTopology, ErrModelNotEnded)
	}
	if dst.Model.NbEntities(entity.Interface) != 0 || dst.Model.NbEntities(entity.Layer) != 0 ||
		dst.Model.NbEntities(entity.Contact) != 0 {
		return buildErrorf(MethodCopyMacroTopology, ErrDestinationNotEmpty)
	}

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error { return copyGeological(b, dst, entity.Interface) })
	g.Go(func() error { return copyGeological(b, dst, entity.Layer) })
	g.Go(func() error { return copyGeological(b, dst, entity.Contact) })
	if err := g.Wait(); err != nil {
		return buildErrorf(MethodCopyMacroTopology, err)
	}

	// Second, kind-ordered pass: wire Children()/InBoundaries() now that
	// every geological entity exists in dst. copyGeological creates entity i
	// of kind k in dst from entity i of kind k in src in the same iteration
	// order, so a src geological id and its dst counterpart always share the
	// same entity.ID — no remap table is needed, including for Contact's
	// InBoundaries (Interfaces), which are geological ids of a kind copied
	// in the same preceding pass.
	for _, k := range [...]entity.Kind{entity.Interface, entity.Layer, entity.Contact} {
		if err := wireGeologicalChildren(b, dst, k); err != nil {
			return buildErrorf(MethodCopyMacroTopology, err)
		}
	}
	return nil
}

// copyGeological copies every entity of kind k from src into dst,
// preserving name and geological feature tag but not children (children
// are wired up by wireGeologicalChildren once every geological kind has
// been copied).
func copyGeological(src, dst *Builder, k entity.Kind) error {
	n := src.Model.NbEntities(k)
	for i := 0; i < n; i++ {
		id := entity.ID{Kind: k, Index: uint32(i)}
		e, err := src.Model.Entity(id)
		if err != nil {
			continue
		}
		newID := dst.Model.CreateEntity(k)
		if err := dst.Model.SetName(newID, e.Name()); err != nil {
			return err
		}
		if err := dst.Model.SetGeologicalFeature(newID, e.GeologicalFeature()); err != nil {
			return err
		}
	}
	return nil
}

// wireGeologicalChildren reproduces, in dst, the Children() links src holds
// for every entity of kind k (Interface->Surfaces, Layer->Regions,
// Contact->Lines — all mesh kinds, so child ids are shared verbatim between
// src and dst per CopyMacroTopology's precondition), and for Contact also
// its InBoundaries() (the defining Interface set, a geological kind whose
// ids are remapped by index since copyGeological assigns them in src's
// iteration order).
func wireGeologicalChildren(src, dst *Builder, k entity.Kind) error {
	n := src.Model.NbEntities(k)
	for i := 0; i < n; i++ {
		srcID := entity.ID{Kind: k, Index: uint32(i)}
		dstID := entity.ID{Kind: k, Index: uint32(i)}
		e, err := src.Model.Entity(srcID)
		if err != nil {
			continue
		}
		for _, child := range e.Children() {
			if err := dst.Model.SetParent(child, dstID); err != nil {
				return err
			}
		}
		if k == entity.Contact {
			for _, ifc := range e.InBoundaries() {
				if err := dst.Model.AddInBoundary(dstID, ifc); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
