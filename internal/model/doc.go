package model

// Package model defines the data shared by the form, the validators and the
// controller boundary: the fixed list of form fields and the add/remove
// request values handed to a controller. Nothing here outlives a submit.
