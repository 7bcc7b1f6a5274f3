package params

import "balancebot/internal/policy"

// Trained weight dump 2025-08-18T22-59-12, the best shipped checkpoint of the offline
// training pipeline. Values are verbatim from the exported model.
var greatParameters = policy.Parameters{
	InputHidden: [policy.InputSize * policy.HiddenSize]float32{
		1.562055, 0.514468, -0.473006, 2.808634, 4.760920, 2.532120, 1.124356, 1.504863,
		1.805886, 1.634778, -2.062981, 1.178754, 0.428206, -0.563004, 1.535193, -1.068067,
		-1.057839, -0.729536, 1.484605, -0.998221, 2.255957, 1.229661, 1.556052, 2.357310,
		0.239409, 2.696138, -1.084991, -1.703210, 1.799259, -1.283825, 3.650103, 2.727259,
		2.212618, 2.015595, 1.633075, 0.605992, -0.630083, 2.147849, -1.120478, 2.848284,
		-0.577283, 1.611074, -0.200125, 1.668548, -0.541821, -0.594331, -0.427008, 3.236287,
		2.886371, -0.133864, -2.303359, -0.130546, 0.802876, 0.809989, 1.634268, -1.151100,
		-0.602146, 1.177242, -0.145163, 1.298190, -0.172146, 1.874677, 1.142781, 0.645349,
		0.140528, -1.276738, -1.181672, 2.752764, 1.922178, 1.899242, -0.168059, 0.240058,
		-0.677331, 1.194658, 2.632901, 0.135653, 0.819208, 2.169080, -1.624542, 1.515473,
		-1.046074, -0.044351, -1.354770, 1.402764, 0.607658, 0.252495, 2.683328, 3.269516,
		-3.574276, 1.946949, -0.887349, 1.200368, 0.064354, 2.477621, 0.825214, 2.146510,
		3.446882, 0.808979, -1.282878, 1.172869, -0.586936, 1.235414, 2.051383, 3.609596,
		1.502400, 2.384709, -1.698860, 0.438668, 1.100604, 1.389171, -0.451361, -0.713746,
		2.529861, 0.325006, -0.155409, -0.121435, -1.491407, 2.179578, -3.194122, -1.796545,
		-0.405066, 0.810857, 1.003453, 1.030951, -1.696151, 2.399278, 1.698151, 0.668891,
	},
	HiddenBias: [policy.HiddenSize]float32{
		3.335025, -0.430289, -0.829481, 0.479285, 0.064816, 2.977705, 1.537046, 4.088611,
		4.164180, 1.869742, 4.015369, 2.218691, 2.194860, 2.188948, 4.111330, 0.321192,
		-0.807275, 3.492487, 5.536273, 4.350257, 2.567554, 4.641420, -0.505011, -0.237479,
		-0.644005, -0.473401, 1.673581, 3.670061, 3.787272, 3.417239, -0.002360, 3.081504,
		0.006566, 2.441579, 1.465405, 3.236509, -0.915540, 3.159756, 1.606339, 0.389322,
		4.343277, 3.001121, 0.033443, -0.334158, 1.705243, -0.654399, -0.682102, 3.266447,
		-0.136549, 2.909122, 0.008018, 3.442800, 0.268609, -1.493734, 0.707482, -0.212758,
		-0.830591, -1.481474, 1.046644, -1.493130, 3.650714, 3.451095, 1.528494, 3.035869,
	},
	HiddenOutput: [policy.HiddenSize * policy.OutputSize]float32{
		0.465633, 1.496157, 1.884236, 0.811821, -0.174297, 0.373779, 1.205584, -0.845979,
		0.903113, -0.759903, -1.936574, -0.622517, -1.886793, -1.696501, -1.095496, 0.289177,
		0.704771, 0.102861, 0.747737, 0.064139, 0.467976, -0.134089, 0.351984, 1.813471,
		1.214756, 0.826649, 1.598918, 0.465928, 0.360751, 0.320001, 1.831483, 0.201918,
		1.510664, 0.032636, 1.774777, -0.323431, 0.552404, 1.960562, 0.599258, 0.194048,
		1.617670, 0.401782, 1.508444, 0.406192, 1.549503, 0.600662, 4.383265, 0.304499,
		0.113412, -0.845975, -1.044519, 0.873461, 0.786546, 2.071872, 3.021733, 0.388386,
		0.741189, 1.777898, 0.194675, 1.673239, 0.459059, 0.441026, -0.022435, 1.213874,
		4.930711, -1.773572, -0.500528, -1.981457, -0.266859, -0.363574, -2.895611, -0.824536,
		0.038620, -1.091421, -0.272516, -0.429502, -1.647473, -0.646360, 1.774762, 2.444822,
		1.759911, 1.570304, -0.119839, 1.728926, 1.200217, 0.331585, 1.062623, 1.011681,
		-0.404660, 0.981923, -1.113478, -1.766857, -1.091031, 0.435578, 0.876305, 0.034029,
		-0.968539, -1.134618, -0.740847, 0.501672, 0.158326, 0.397873, -0.093179, 0.574975,
		1.285098, 0.371434, 0.393031, 1.448127, 1.017989, -0.973421, 1.042020, 0.613371,
		0.239669, 0.415911, 0.463373, 0.257178, 0.960232, -1.034883, -1.863229, -0.870047,
		1.285384, 0.346159, 1.616449, 0.316559, -0.157922, -0.011393, -0.260219, -0.353031,
		-1.292353, -0.122499, -1.896060, -0.447871, 0.605159, -0.138838, 1.106491, 0.894468,
		-0.758770, 0.349735, 0.672770, -0.506824, 0.083725, 0.251856, 1.499237, 1.179429,
		-0.816366, -1.872082, -0.942827, 0.719754, 1.530704, 1.105589, -0.953745, -0.607486,
		-1.675260, -0.453360, 1.676731, -0.108341, 0.332944, -0.559575, 0.570322, 0.001389,
		-0.556805, 0.039936, 1.067614, 0.327634, 0.880732, -0.078886, -0.692667, -1.079174,
		1.187045, -1.229772, 0.969661, 0.181852, -0.418336, 0.092987, 0.240172, 3.889463,
		0.362683, -0.327369, -1.417740, 0.061413, 1.209702, 1.151713, 1.747081, 0.353684,
		-0.011685, -0.099002, 0.096467, 1.298059, 0.427827, 0.884686, 0.919311, 1.119833,
	},
	OutputBias: [policy.OutputSize]float32{
		0.608543, 4.684580, 0.430603,
	},
}
