package params

import "balancebot/internal/policy"

// Trained weight dump 2025-08-17T17-26-44, an early acceptable checkpoint of the offline
// training pipeline. Values are verbatim from the exported model.
var okayishParameters = policy.Parameters{
	InputHidden: [policy.InputSize * policy.HiddenSize]float32{
		7.023232, -1.946496, -3.660843, 0.602734, -5.156502, -2.125623, -2.262152, 3.537727,
		-1.847513, 5.594237, 5.157835, -2.229493, -2.576713, -4.074543, 3.075437, 1.582539,
		-2.657667, 6.860506, -4.326180, -3.920493, 1.961780, -2.236488, 8.866314, 8.776635,
		-6.881963, 7.039897, 6.978577, 3.682001, 8.947897, -5.578982, 5.578310, -0.396936,
		1.448075, 2.259323, -3.596382, 5.706481, 3.215534, 9.003716, 2.990098, 5.682712,
		5.422194, -2.412235, 8.792321, 4.318284, -2.177967, 8.304332, 0.656789, -5.843938,
		-6.586642, -4.976937, 9.008966, 5.064896, 1.330268, -2.393737, -3.755072, 5.433015,
		-7.779222, 5.952105, 6.251626, 8.590270, 1.916585, 3.361299, 4.988776, 8.524696,
		7.040170, 6.249614, -5.528822, -1.290155, -2.341282, 6.861738, 7.467060, 9.133445,
		6.195847, -0.543552, 1.495834, 7.389530, 3.538911, -2.879457, 5.602779, 9.999001,
		7.287007, 7.165514, -5.238105, -5.412622, 6.280796, 5.985641, 9.998694, 6.671149,
		-9.272775, 9.999001, 6.411644, 9.999001, 2.362712, -0.143927, 9.987533, -1.337093,
		9.999001, -3.802574, -5.505105, 5.309973, 9.999001, 1.243797, 0.625026, 9.999001,
		5.444474, 7.289879, 6.816528, 4.470291, 6.592383, 0.702628, -7.943575, -8.206820,
		-9.986835, -3.605889, 0.986598, 9.999001, -6.502712, 7.262049, -9.582799, 9.456708,
		-8.293652, 6.828340, 6.330016, 5.177098, 4.480667, 6.679293, 6.803697, 5.973219,
	},
	HiddenBias: [policy.HiddenSize]float32{
		-4.608638, -1.025601, -6.501798, -0.179922, 9.999697, -1.505780, -1.288382, -0.063906,
		-1.098465, -5.406548, -5.626944, -1.283827, -1.419015, 7.609716, -0.019569, -0.267095,
		-0.812000, 8.893893, -7.017145, -6.701336, -0.298858, -0.930873, -0.756151, 9.998854,
		-0.740462, -0.782925, 9.059819, -0.454074, -2.636194, -5.653224, 0.432449, -0.904040,
		-0.257348, -0.390401, -6.424275, -5.094511, -0.413040, -2.548503, 9.998443, -0.652023,
		-6.177557, -1.055423, -1.111208, 7.945953, -0.957842, 9.960999, -2.262724, -0.004519,
		-0.576031, 9.999621, -2.522706, -0.591737, -0.043445, -1.060988, -0.601453, -0.395452,
		0.041157, 9.997232, 8.007367, 8.574869, 8.618369, -0.475475, -3.885806, 9.999194,
	},
	HiddenOutput: [policy.HiddenSize * policy.OutputSize]float32{
		-5.587954, -1.338409, 7.894243, -4.962707, -3.182529, -2.710292, 1.461152, -9.709034,
		-5.648414, -2.212940, -0.139113, 5.160562, -0.084272, 0.671394, 2.650271, -6.373718,
		-1.190761, 0.246599, -6.727904, -1.919167, -2.161101, -9.998485, -9.104272, -6.751316,
		-4.544266, -4.427130, -3.654868, -2.031543, -2.058283, 9.277313, -4.725622, -2.927679,
		2.245592, -7.851984, -1.791459, -2.572003, 0.655623, 1.198598, 1.451485, 1.544230,
		-1.286419, 0.873134, -4.064549, -5.273642, -7.706302, -9.997818, -3.833695, -5.459013,
		-5.847614, -3.030030, -1.662569, 1.970976, 0.252092, -0.554032, 1.141466, -10.000000,
		-5.519770, 1.364865, -10.000000, -5.648401, 1.014188, 0.426735, -8.632522, -4.884659,
		-3.638630, 2.209774, -9.998488, -9.236064, -0.818472, 0.186232, 6.200472, 1.062291,
		-9.567947, -7.802730, -9.969671, -9.998501, -8.178892, -2.274161, 1.750523, 0.317791,
		-0.568474, -9.998501, -9.998934, -8.020748, 9.990403, 7.111800, 5.202513, 5.953860,
		9.845404, -2.366477, -5.184835, -5.301702, 9.998660, 9.742731, -2.212579, 9.827650,
		-9.712143, -4.027054, -6.541830, 7.397160, 8.965155, 9.583761, 1.531406, -7.872448,
		-5.429743, -7.620375, -6.061645, 1.329547, -9.998339, -9.999308, -8.597130, 9.978527,
		7.311152, 6.552685, -3.781931, 0.233861, 1.429024, -7.103989, -9.731123, -2.981201,
		-6.539904, -0.878213, 7.422890, -7.699227, -2.127329, -1.782914, 8.523526, 7.226751,
		-5.621420, 2.145602, 0.017955, -0.266393, -5.200203, -2.964766, -2.204410, 0.989793,
		-1.440522, 3.423784, -3.725695, 5.854098, -4.168884, -5.795030, -7.439397, -5.605638,
		9.576832, -2.339823, -5.102937, -0.833721, 1.272744, 2.634202, 9.973733, 8.245879,
		5.849717, -5.402317, -6.336952, -4.632036, -7.499793, -7.818459, -8.956123, -7.782010,
		-2.361067, -1.846055, -9.937052, 4.737638, -8.084605, -3.914376, -5.222555, -6.069197,
		9.083991, 9.500952, 9.353291, 1.528680, 1.264627, -1.153892, 1.587600, 0.252650,
		-0.293399, 0.698731, -1.105670, 0.858467, 2.815850, -0.328581, -0.599793, 7.979664,
		2.225731, -10.000000, -0.752829, 0.822771, -6.823290, 0.721177, 2.456748, -0.943365,
	},
	OutputBias: [policy.OutputSize]float32{
		9.509856, 9.999767, 9.999404,
	},
}
