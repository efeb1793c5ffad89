package catalog

import "github.com/mdrakibulhaquesardar/flx-cli/pkg/config"

var getxController = mustParse("getx_controller", `import 'package:get/get.dart';

import '../../domain/entities/{{.Snake}}_entity.dart';
import '../../domain/usecases/get_{{.Snake}}_usecase.dart';

class {{.Pascal}}Controller extends GetxController {
  {{.Pascal}}Controller({required this.get{{.Pascal}}Usecase});

  final Get{{.Pascal}}Usecase get{{.Pascal}}Usecase;

  final isLoading = false.obs;
  final {{.Camel}} = Rxn<{{.Pascal}}Entity>();
  final errorMessage = RxnString();

  Future<void> load{{.Pascal}}(String id) async {
    isLoading.value = true;
    errorMessage.value = null;
    try {
      {{.Camel}}.value = await get{{.Pascal}}Usecase(id);
    } catch (e) {
      errorMessage.value = e.toString();
    } finally {
      isLoading.value = false;
    }
  }
}
`)

var getxPage = mustParse("getx_page", `import 'package:flutter/material.dart';
import 'package:get/get.dart';

import '../controllers/{{.Snake}}_controller.dart';

/// {{.Pascal}} page, scaffolded by {{.Author}}.
class {{.Pascal}}Page extends GetView<{{.Pascal}}Controller> {
  const {{.Pascal}}Page({super.key});

  @override
  Widget build(BuildContext context) {
    return Scaffold(
      appBar: AppBar(title: const Text('{{.Pascal}}')),
      body: Obx(() {
        if (controller.isLoading.value) {
          return const Center(child: CircularProgressIndicator());
        }
        final error = controller.errorMessage.value;
        if (error != null) {
          return Center(child: Text(error));
        }
        return const Center(child: Text('{{.Pascal}}'));
      }),
    );
  }
}
`)

var getxBinding = mustParse("getx_binding", `import 'package:get/get.dart';

import '../../data/datasources/{{.Snake}}_remote_data_source.dart';
import '../../data/repositories/{{.Snake}}_repository_impl.dart';
import '../../domain/repositories/{{.Snake}}_repository.dart';
import '../../domain/usecases/get_{{.Snake}}_usecase.dart';
import '../controllers/{{.Snake}}_controller.dart';

class {{.Pascal}}Binding extends Bindings {
  @override
  void dependencies() {
    Get.lazyPut<{{.Pascal}}RemoteDataSource>(
      () => {{.Pascal}}RemoteDataSourceImpl(client: Get.find()),
    );
    Get.lazyPut<{{.Pascal}}Repository>(
      () => {{.Pascal}}RepositoryImpl(remoteDataSource: Get.find()),
    );
    Get.lazyPut(() => Get{{.Pascal}}Usecase(repository: Get.find()));
    Get.lazyPut(() => {{.Pascal}}Controller(get{{.Pascal}}Usecase: Get.find()));
  }
}
`)

// Controller renders the reactive-family controller with observable fields.
func Controller(name string, cfg config.Config) string {
	return render(getxController, newCtx(name, cfg))
}
