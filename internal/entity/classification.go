package entity

// ClassLabels is the canonical output order of the classifier head. It is
// used both for naming predictions and for breaking score ties (lowest index
// wins), so the order must never change independently of the model artifact.
var ClassLabels = []string{"Glioma", "Meningioma", "No Tumor", "Pituitary"}
