package params

import "balancebot/internal/policy"

// Trained weight dump 2025-08-17T19-28-58, a solid mid-training checkpoint of the offline
// training pipeline. Values are verbatim from the exported model.
var goodParameters = policy.Parameters{
	InputHidden: [policy.InputSize * policy.HiddenSize]float32{
		6.295638, -1.850533, -3.660843, 0.602734, -6.841746, -2.096013, -2.126892, 7.628844,
		-1.742573, 9.687100, 4.709247, -2.089385, -2.576713, 9.120074, 0.502768, -1.870195,
		-2.594027, 7.311043, -4.326180, -3.920493, 9.728833, -2.216990, 5.342290, 8.861135,
		-6.688597, 4.232511, 9.996012, 4.026363, 8.000815, -5.578982, 4.699579, 2.422302,
		-1.920287, -3.820326, -3.596382, 5.016973, 4.649177, 8.202576, -6.308837, 4.131910,
		9.413630, -2.304744, 8.491673, 9.952552, -2.091427, 2.351893, 0.629483, -9.662912,
		-7.130031, -4.491361, -8.846105, 9.965243, -7.087262, -2.284093, -6.909976, 0.935843,
		-9.990727, 9.979317, 7.905297, 4.997625, 9.103757, 7.880756, 5.246580, 9.993675,
		6.975945, 6.465416, -5.528822, -1.290155, 7.186906, 6.890776, 7.693265, 9.329733,
		6.429513, 9.168078, 7.105161, 7.607069, 3.538911, 8.852961, 2.878730, 7.340614,
		7.452807, 4.370234, -5.238105, -5.412622, 2.631392, 6.004950, 7.786075, 3.688759,
		-9.904918, 7.136580, 6.699219, 7.037698, 6.476280, -0.143927, 6.828653, 9.500813,
		7.363741, 9.450343, -5.505105, 6.986243, 6.728014, 8.457144, -3.787674, 8.261312,
		9.560166, 7.475851, 3.418196, 1.169422, 6.794282, 0.080153, -8.089054, -9.846926,
		3.053711, 4.115725, 6.924769, 9.964819, -3.540367, 7.449141, -9.998987, 6.612534,
		-9.732748, 9.999708, 8.764077, 7.846357, 9.999992, -2.676654, 7.982852, 9.998997,
	},
	HiddenBias: [policy.HiddenSize]float32{
		0.080536, -0.929635, -6.501798, -0.179922, 9.275137, -1.476170, -1.153123, -0.058938,
		-0.993763, -0.032095, -0.030411, -1.143823, -1.419015, 9.995647, -1.007954, -1.195314,
		-0.748420, 9.999460, -7.017145, -6.701336, -0.240355, -0.911372, 0.059972, 9.997789,
		-0.547384, 0.449758, 9.307693, -0.018306, 4.539246, -5.653224, -0.088031, 1.631950,
		-1.184551, 3.198842, -6.424275, 0.109031, -0.086791, 0.137293, 2.834974, -1.177511,
		-0.067350, -0.947959, -1.161099, 9.805529, -0.871277, 3.015492, -2.235251, -0.588661,
		0.022934, 3.431534, 4.629768, -0.208353, 0.060355, -0.951354, -0.280214, -3.236523,
		-0.096716, 9.865481, 6.809405, 3.647973, 5.385517, 1.412368, -0.039483, 9.995531,
	},
	HiddenOutput: [policy.HiddenSize * policy.OutputSize]float32{
		-9.759555, -9.704429, -3.454707, -5.564745, -3.108928, -2.520485, 1.461152, -9.709034,
		-5.648414, -2.212940, -0.139113, 5.160562, 0.431317, -1.438130, 0.400379, -6.373718,
		-1.190379, 0.254943, -7.306643, -1.843698, -1.973046, -6.472114, -9.947268, -2.031401,
		-5.127713, -4.352422, -3.465006, -5.539598, -1.447761, 8.454305, -9.712676, -9.834433,
		-7.446741, -8.441308, -1.715975, -2.384837, 0.655623, 1.198598, 1.451485, -0.651078,
		-6.365025, 2.984835, -0.620551, -3.977003, -6.567152, -8.432240, -2.002603, -1.969182,
		-6.569915, -2.962635, -1.466082, 0.597767, 1.695903, 0.414740, 1.141466, -10.000000,
		-5.519770, 1.364865, -10.000000, -5.648401, 4.466168, 4.912095, -9.997786, -4.884659,
		-3.638630, 2.212678, -8.079793, -9.547993, -3.167751, -0.408713, 6.187855, 1.462381,
		-9.787572, -4.645315, -10.000000, -9.581159, -9.621643, -8.123490, 0.019523, 0.537000,
		-1.720936, -9.698351, -9.877735, -8.298148, 6.285109, 9.436760, 9.999233, 5.953860,
		9.845404, -2.366477, -7.273551, -9.900617, -7.681024, 9.999985, -9.046762, -0.800157,
		-6.896054, -2.194559, -3.068935, 9.999969, -6.593205, -0.998238, 1.531406, -7.872448,
		-5.429743, -8.578238, -9.719885, -5.070611, -6.413540, -9.900917, -7.672114, 3.818908,
		1.020840, 7.636564, 0.074648, 1.333026, 2.131731, -6.511018, -8.141835, -2.197324,
		-7.497734, -8.794179, -1.682740, -8.339524, -2.055104, -1.593541, 7.187456, 7.874950,
		5.511042, 0.151787, 3.062952, -0.624655, -5.830593, -2.893039, -2.016152, -0.022415,
		-3.163301, 3.536042, -3.898687, 5.829141, -4.216600, -9.235849, -9.890819, -10.000000,
		-3.540342, -7.601387, -7.294088, 3.328122, 0.521785, 0.788391, 2.388827, -1.355578,
		9.333737, 1.931855, -4.671470, -7.351176, -9.182127, -7.005639, -6.903049, -8.422039,
		-2.288596, -1.656692, -9.779089, 3.331609, -10.000000, -1.587553, -3.719940, -4.566545,
		9.999997, -2.246124, -5.716110, -1.102775, 1.669343, -0.782916, -0.757946, 2.341926,
		0.133086, 0.440944, 0.584484, -1.092948, 0.561345, 0.625357, -1.059536, 8.594075,
		5.169158, -7.616521, -1.505104, 2.752802, -1.613890, -0.437487, 1.791742, -1.057920,
	},
	OutputBias: [policy.OutputSize]float32{
		9.999990, 9.864182, 8.508238,
	},
}
