// Package canopy is a retained-mode UI layer for [Ebitengine] games: a
// document holding a stack of surfaces, each the root of a control tree.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	doc := canopy.NewDocument(canopy.Rect{Width: 640, Height: 480})
//	menu := doc.AddSurface("menu")
//	// ... attach controls ...
//	canopy.Run(doc, canopy.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// For full control, implement [ebiten.Game] yourself (or embed [Game]) and
// call [Document.PushEvent], [Document.Update] and [Document.Draw] directly.
//
// # Surfaces
//
// A [Surface] is a named layer such as a menu, a HUD or a dialog. Surfaces are
// drawn bottom to top (index 0 first) and updated and sent events top to
// bottom. A modal surface stops events from reaching the surfaces below it.
//
// Any callback may add or destroy surfaces, including the surface it belongs
// to. While the document is iterating its stack such changes are queued and
// committed in request order once the iteration ends:
//
//	ok.OnClick = func(canopy.ClickContext) {
//		doc.DestroySurface(dialog) // safe: applied after this event
//	}
//
// # Controls
//
// Every element of a surface is a [Control]. Create them with [NewPanel],
// [NewLabel], [NewButton] and [NewTextInput]; positions are relative to the
// parent. Controls with a TextKey show the message with that id in the
// active language; call [Document.SetLanguage] to switch.
//
// # Focus
//
// At most one control per document holds focus. It receives text and key
// events. Pressing the pointer outside it blurs it; OnBlur runs exactly once.
//
// # ECS
//
// Set an [EventSink] with [Document.SetEventSink] to forward control
// interactions to an ECS. The canopy/ecs module provides a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package canopy
