// Package framework registers front-end assets (scripts and stylesheets)
// with a host platform's loading lifecycle.
//
// # Quick Start
//
// Create an asset around a resolved file, configure it, and bind it to
// one or more locations:
//
//	hooks := framework.NewHooks()
//	host := framework.NewRenderer(hooks)
//	dir := framework.NewDir("public", "/assets")
//
//	framework.NewAsset(dir.File("js/app.js"), hooks, host).
//	    SetHandle("app").
//	    SetDependencies("jquery").
//	    SetVersion(framework.VersionTag("1.0")).
//	    To(framework.Front)
//
// When the host fires the location's lifecycle event, the asset hands
// itself to the host's enqueue primitives:
//
//	if err := hooks.Do(framework.Front.Hook()); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(host.Footer()) // scripts default to the footer
//
// # Collaborators
//
// An asset owns no I/O of its own. It delegates to four ports supplied
// at construction:
//
//   - File resolves the asset's path, public URL, and type.
//   - Registrars (ActionRegistrar + FilterRegistrar) receive lifecycle
//     and tag-rewrite registrations. Hooks is the built-in registry.
//   - Host receives the enqueue, localize, and inline-code calls.
//     Renderer is the built-in Host that renders HTML tags.
//
// Tests substitute any of these with doubles that record calls.
//
// # Injections
//
// Beyond the tag itself, an asset can carry localized data bundles
// (served as JSON before the script runs), inline code placed before or
// after its own tag, and extra HTML attributes spliced into the
// rendered tag through a loader-tag filter:
//
//	a.Localize("appConfig", map[string]any{"debug": true})
//	a.Inline("console.log('ready')", framework.After)
//	err := a.Attributes(map[string]any{"defer": true})
//
// Attributes and Enqueue need a resolved asset type; both return
// ErrTypeRequired when the file's extension discovers nothing and no
// explicit SetType override was given.
//
// # Manifests
//
// Assets can also be declared in a YAML manifest and registered in one
// call; see LoadManifest and Manifest.Register. The assetgen command
// renders a static HTML preview of a manifest's assets.
package framework
