// Package fallbacktext renders the orrery fallback message as an image.
//
// When the capability gate fails, the backdrop reveals its fallback panel.
// Hosts without a text stack of their own can use Panel here: it implements
// orrery.FallbackPanel and rasterizes the message to a centered single-line
// image the host can present instead of the animated backdrop.
package fallbacktext
