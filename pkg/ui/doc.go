// Package ui renders the showcase widgets (buttons, dropdowns, the modal and
// the toast) as Tailwind-styled VNodes.
//
// Widgets carry no Go callbacks. A button that should change server state
// is bound with Action, which writes data-action and data-args attributes;
// the browser script forwards those to the session as action messages.
// Dropdowns are pure client behavior driven by data-dropdown-toggle and
// data-dropdown-trigger.
package ui
